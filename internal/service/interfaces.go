package service

import (
	"context"

	"github.com/dkorolev/repoboard/models"
)

// AuthService handles account lifecycle and token issuance/verification.
type AuthService interface {
	// Register creates a new account from plaintext credentials.
	Register(ctx context.Context, email, password string) (models.User, error)

	// Login authenticates existing credentials and returns the account.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and extracts the user ID.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveUser loads the account referenced by a verified token.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial credential change.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the account. Projects owned by the account are
	// intentionally left in place (no cross-store referential integrity).
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// ProjectService handles the per-user project list, including GitHub
// imports.
type ProjectService interface {
	List(ctx context.Context, userID int64) ([]models.Project, error)
	Create(ctx context.Context, userID int64, req models.CreateProjectRequest) (models.Project, error)
	Update(ctx context.Context, userID int64, projectID string, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, userID int64, projectID string) error

	// ImportFromGitHub fetches repository metadata upstream, enriches it
	// with a generated comment (best-effort), and persists the project.
	ImportFromGitHub(ctx context.Context, userID int64, repoPath string) (models.Project, error)

	// CheckRepo reports whether the path exists locally for the user and
	// whether it exists upstream.
	CheckRepo(ctx context.Context, userID int64, repoPath string) (models.CheckRepoResponse, error)
}

// HealthService reports per-datastore reachability.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}
