package service

import (
	"context"
	"fmt"

	"github.com/dkorolev/repoboard/internal/adapter"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/store"
	"github.com/dkorolev/repoboard/internal/validators"
	"github.com/dkorolev/repoboard/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectService is the concrete implementation of ProjectService. It
// composes the project repository with the two external collaborators:
// the repository-metadata provider and the comment provider.
type projectService struct {
	projectRepository store.ProjectRepository
	repoProvider      adapter.RepositoryProvider
	commentProvider   adapter.CommentProvider
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService from its collaborators.
func NewProjectService(
	projectRepository store.ProjectRepository,
	repoProvider adapter.RepositoryProvider,
	commentProvider adapter.CommentProvider,
	logger *logger.Logger,
) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		repoProvider:      repoProvider,
		commentProvider:   commentProvider,
		logger:            logger,
	}
}

// List returns the user's projects, newest external creation time first.
func (p *projectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	return p.projectRepository.ListForUser(ctx, userID)
}

// Create validates and persists a manually entered project.
//
// The (userID, name) uniqueness is left to the store's unique index; the
// service performs no advisory pre-check, so two concurrent creates cannot
// both slip through.
func (p *projectService) Create(ctx context.Context, userID int64, req models.CreateProjectRequest) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCreateProject(req); err != nil {
		log.Error().Int64("userID", userID).Msg("invalid project data provided")
		return models.Project{}, err
	}

	project := models.Project{
		Owner:      req.Owner,
		Name:       req.Name,
		URL:        req.URL,
		Stars:      *req.Stars,
		Forks:      *req.Forks,
		OpenIssues: *req.OpenIssues,
		CreatedAt:  *req.CreatedAt,
		UserID:     userID,
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("name", req.Name).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial change to a project owned by the caller.
// A project owned by someone else behaves exactly like a missing one.
func (p *projectService) Update(ctx context.Context, userID int64, projectID string, update models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	id, err := parseProjectID(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if err = validators.ValidateProjectUpdate(update); err != nil {
		log.Error().Int64("userID", userID).Str("projectID", projectID).Msg("invalid project update provided")
		return models.Project{}, err
	}

	updated, err := p.projectRepository.UpdateProject(ctx, userID, id, update)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("projectID", projectID).Msg("project update ended with error")
		return models.Project{}, fmt.Errorf("project update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a project owned by the caller; an unowned or unknown ID
// yields store.ErrProjectNotFound.
func (p *projectService) Delete(ctx context.Context, userID int64, projectID string) error {
	log := logger.FromContext(ctx)

	id, err := parseProjectID(projectID)
	if err != nil {
		return err
	}

	deleted, err := p.projectRepository.DeleteProject(ctx, userID, id)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("projectID", projectID).Msg("project deletion ended with error")
		return fmt.Errorf("project deletion ended with error: %w", err)
	}
	if !deleted {
		return store.ErrProjectNotFound
	}

	return nil
}

// ImportFromGitHub fetches repository metadata upstream and persists it as
// a project owned by the caller.
//
// The comment enrichment is strictly best-effort: any comment-provider
// failure is logged and replaced by the deterministic fallback; the import
// itself never fails because of it. Duplicate imports are rejected by the
// (userId, githubPath) unique index.
func (p *projectService) ImportFromGitHub(ctx context.Context, userID int64, repoPath string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRepoPath(repoPath); err != nil {
		log.Error().Int64("userID", userID).Str("repoPath", repoPath).Msg("invalid repo path provided")
		return models.Project{}, err
	}

	// Advisory pre-check for a friendlier error before the upstream
	// round-trip; the unique index remains the authority.
	exists, err := p.projectRepository.ExistsForPath(ctx, userID, repoPath)
	if err != nil {
		return models.Project{}, fmt.Errorf("import pre-check ended with error: %w", err)
	}
	if exists {
		return models.Project{}, store.ErrProjectAlreadyImported
	}

	data, err := p.repoProvider.GetRepositoryData(ctx, repoPath)
	if err != nil {
		log.Err(err).Str("repoPath", repoPath).Msg("fetching repository metadata failed")
		return models.Project{}, err
	}

	project := models.Project{
		Owner:      data.Owner,
		Name:       data.Name,
		URL:        data.URL,
		Stars:      data.Stars,
		Forks:      data.Forks,
		OpenIssues: data.OpenIssues,
		CreatedAt:  data.CreatedAt,
		GitHubPath: data.GitHubPath,
		AIComment:  p.generateComment(ctx, data),
		UserID:     userID,
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("repoPath", repoPath).Msg("imported project creation ended with error")
		return models.Project{}, fmt.Errorf("imported project creation ended with error: %w", err)
	}

	return created, nil
}

// CheckRepo pre-validates an import: does the path already exist locally
// for this user, and does it exist upstream at all. The upstream check is
// skipped once a local duplicate is found.
func (p *projectService) CheckRepo(ctx context.Context, userID int64, repoPath string) (models.CheckRepoResponse, error) {
	if err := validators.ValidateRepoPath(repoPath); err != nil {
		return models.CheckRepoResponse{}, err
	}

	existsLocally, err := p.projectRepository.ExistsForPath(ctx, userID, repoPath)
	if err != nil {
		return models.CheckRepoResponse{}, fmt.Errorf("local existence check ended with error: %w", err)
	}

	if existsLocally {
		return models.CheckRepoResponse{
			ExistsLocally: true,
			Message:       "Repository already exists in your projects",
		}, nil
	}

	existsUpstream := p.repoProvider.CheckRepositoryExists(ctx, repoPath)
	message := "Repository not found on GitHub"
	if existsUpstream {
		message = "Repository found on GitHub and can be added"
	}

	return models.CheckRepoResponse{
		ExistsLocally:  false,
		ExistsOnGitHub: existsUpstream,
		Message:        message,
	}, nil
}

// generateComment asks the comment provider for a generated comment and
// falls back to the deterministic one on any failure.
func (p *projectService) generateComment(ctx context.Context, data models.RepositoryData) string {
	comment, err := p.commentProvider.GenerateComment(ctx, data)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("repoPath", data.GitHubPath).Msg("comment generation failed, using fallback")
		return adapter.FallbackComment(data)
	}

	return comment
}

// parseProjectID converts a path parameter into an ObjectID. A malformed
// ID cannot reference any stored project, so it reads as not found rather
// than a validation failure, keeping unowned and nonexistent IDs
// indistinguishable.
func parseProjectID(projectID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return primitive.NilObjectID, store.ErrProjectNotFound
	}
	return id, nil
}
