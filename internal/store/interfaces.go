package store

import (
	"context"

	"github.com/dkorolev/repoboard/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for the relational user store.
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, email, passwordHash *string) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	Ping(ctx context.Context) error
}

// ProjectRepository is the data-access contract for the document project store.
// Every read and write is scoped to the owning user.
type ProjectRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	FindProject(ctx context.Context, userID int64, id primitive.ObjectID) (models.Project, error)
	UpdateProject(ctx context.Context, userID int64, id primitive.ObjectID, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, userID int64, id primitive.ObjectID) (bool, error)
	ExistsForPath(ctx context.Context, userID int64, repoPath string) (bool, error)
	Ping(ctx context.Context) error
}
