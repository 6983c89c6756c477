package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/models"
	"github.com/google/go-github/v82/github"
)

// repoPathPattern validates "owner/repository" paths before any network
// round-trip is made.
var repoPathPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+/[a-zA-Z0-9._-]+$`)

// githubProvider implements [RepositoryProvider] on top of the GitHub REST
// API via the go-github client. An optional API token raises the rate limit;
// unauthenticated access works but is limited aggressively by GitHub.
type githubProvider struct {
	client  *github.Client
	timeout contextTimeout
	logger  *logger.Logger
}

// NewGitHubProvider constructs a [RepositoryProvider] from the given
// configuration. Every call is bounded by cfg.RequestTimeout so a slow
// upstream cannot hang a request indefinitely.
func NewGitHubProvider(cfg config.GitHub, log *logger.Logger) RepositoryProvider {
	client := github.NewClient(nil)
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}

	return &githubProvider{
		client:  client,
		timeout: contextTimeout(cfg.RequestTimeout),
		logger:  log,
	}
}

// GetRepositoryData fetches repository metadata and maps it onto
// [models.RepositoryData].
//
// Error handling:
//   - malformed path → [ErrInvalidRepoPath] (no network call made);
//   - HTTP 404 → [ErrRepositoryNotFound];
//   - HTTP 403 → [ErrRateLimited];
//   - anything else → wrapped [ErrUpstream].
func (g *githubProvider) GetRepositoryData(ctx context.Context, repoPath string) (models.RepositoryData, error) {
	log := logger.FromContext(ctx)

	owner, repo, err := splitRepoPath(repoPath)
	if err != nil {
		return models.RepositoryData{}, err
	}

	ctx, cancel := g.timeout.apply(ctx)
	defer cancel()

	repository, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		log.Err(err).Str("repoPath", repoPath).Msg("github repository fetch failed")
		return models.RepositoryData{}, mapGitHubError(resp, err)
	}

	data := models.RepositoryData{
		Owner:         repository.GetOwner().GetLogin(),
		Name:          repository.GetName(),
		URL:           repository.GetHTMLURL(),
		Stars:         int64(repository.GetStargazersCount()),
		Forks:         int64(repository.GetForksCount()),
		OpenIssues:    int64(repository.GetOpenIssuesCount()),
		CreatedAt:     repository.GetCreatedAt().Unix(),
		GitHubPath:    repository.GetFullName(),
		Description:   repository.GetDescription(),
		Language:      repository.GetLanguage(),
		DefaultBranch: repository.GetDefaultBranch(),
		Archived:      repository.GetArchived(),
	}

	return data, nil
}

// CheckRepositoryExists reports upstream existence; any failure (including
// rate limiting and network errors) reads as "not found" because the check
// endpoint is advisory only.
func (g *githubProvider) CheckRepositoryExists(ctx context.Context, repoPath string) bool {
	owner, repo, err := splitRepoPath(repoPath)
	if err != nil {
		return false
	}

	ctx, cancel := g.timeout.apply(ctx)
	defer cancel()

	_, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("repoPath", repoPath).Msg("github existence check failed")
		return false
	}

	return resp != nil && resp.StatusCode == http.StatusOK
}

func splitRepoPath(repoPath string) (owner, repo string, err error) {
	if !repoPathPattern.MatchString(repoPath) {
		return "", "", ErrInvalidRepoPath
	}

	parts := strings.SplitN(repoPath, "/", 2)
	return parts[0], parts[1], nil
}

func mapGitHubError(resp *github.Response, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return ErrRateLimited
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrRepositoryNotFound
		case http.StatusForbidden:
			return ErrRateLimited
		}
	}

	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
