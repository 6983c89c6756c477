package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// projectRepository is the MongoDB-backed implementation of
// [ProjectRepository]. Every filter includes the owning userId so that a
// project belonging to another user behaves exactly like a missing one.
type projectRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided document store handle and logger.
func NewProjectRepository(db *MongoDB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		collection: db.Collection(models.Project{}.CollectionName()),
		logger:     logger,
	}
}

// ListForUser returns all projects owned by userID ordered by external
// creation time descending (newest repositories first).
func (r *projectRepository) ListForUser(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListForUser").Msg("error: find failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	projects := make([]models.Project, 0)
	if err = cursor.All(ctx, &projects); err != nil {
		log.Err(err).Str("func", "*projectRepository.ListForUser").Msg("error: cursor decoding failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return projects, nil
}

// CreateProject inserts a new project and returns it with the assigned ID
// and audit timestamps.
//
// Uniqueness is enforced by the compound indexes created at connect time;
// a duplicate-key failure is mapped to [ErrProjectAlreadyImported] when the
// githubPath index tripped, and [ErrProjectNameTaken] otherwise.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	project.ID = primitive.NewObjectID()
	project.InsertedAt = now
	project.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, project); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Project{}, duplicateKeyError(err)
		}
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error: insert failed")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

// FindProject loads a single project scoped to (id, userID).
func (r *projectRepository) FindProject(ctx context.Context, userID int64, id primitive.ObjectID) (models.Project, error) {
	log := logger.FromContext(ctx)

	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "*projectRepository.FindProject").Msg("error: find failed")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

// UpdateProject applies the non-nil fields of update to the project scoped
// to (id, userID) and returns the record after the update. The updatedAt
// audit timestamp is always bumped.
//
// Error handling:
//   - no matching document → [ErrProjectNotFound] (covers foreign owners).
//   - duplicate-key on a renamed project → [ErrProjectNameTaken].
func (r *projectRepository) UpdateProject(ctx context.Context, userID int64, id primitive.ObjectID, update models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.FindProject(ctx, userID, id)
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Owner != nil {
		set["owner"] = *update.Owner
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.URL != nil {
		set["url"] = *update.URL
	}
	if update.Stars != nil {
		set["stars"] = *update.Stars
	}
	if update.Forks != nil {
		set["forks"] = *update.Forks
	}
	if update.OpenIssues != nil {
		set["openIssues"] = *update.OpenIssues
	}
	if update.CreatedAt != nil {
		set["createdAt"] = *update.CreatedAt
	}
	if update.AIComment != nil {
		set["aiComment"] = *update.AIComment
	}

	var project models.Project
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Project{}, ErrProjectNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Project{}, duplicateKeyError(err)
		}
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error: update failed")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

// DeleteProject removes the project scoped to (id, userID) and reports
// whether a document was actually deleted.
func (r *projectRepository) DeleteProject(ctx context.Context, userID int64, id primitive.ObjectID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error: delete failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount > 0, nil
}

// ExistsForPath reports whether the user already imported the given
// GitHub repository path.
func (r *projectRepository) ExistsForPath(ctx context.Context, userID int64, repoPath string) (bool, error) {
	log := logger.FromContext(ctx)

	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "githubPath": repoPath})
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ExistsForPath").Msg("error: count failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Ping reports document store reachability for the health endpoint.
func (r *projectRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}

// duplicateKeyError translates a MongoDB duplicate-key failure into the
// matching domain sentinel by inspecting which unique index tripped.
func duplicateKeyError(err error) error {
	if strings.Contains(err.Error(), projectPathIndex) {
		return ErrProjectAlreadyImported
	}
	return ErrProjectNameTaken
}
