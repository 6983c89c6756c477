package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v82/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_splitRepoPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "plain", path: "golang/go", wantOwner: "golang", wantRepo: "go"},
		{name: "dots and dashes", path: "rs.d/zero-log_2", wantOwner: "rs.d", wantRepo: "zero-log_2"},
		{name: "missing repo", path: "golang", wantErr: true},
		{name: "empty", path: "", wantErr: true},
		{name: "extra segment", path: "a/b/c", wantErr: true},
		{name: "spaces", path: "golang / go", wantErr: true},
		{name: "full url", path: "https://github.com/golang/go", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := splitRepoPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRepoPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func Test_mapGitHubError(t *testing.T) {
	notFoundResp := &github.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}
	forbiddenResp := &github.Response{Response: &http.Response{StatusCode: http.StatusForbidden}}

	t.Run("404 maps to not found", func(t *testing.T) {
		err := mapGitHubError(notFoundResp, errors.New("404 Not Found"))
		require.ErrorIs(t, err, ErrRepositoryNotFound)
	})

	t.Run("403 maps to rate limited", func(t *testing.T) {
		err := mapGitHubError(forbiddenResp, errors.New("403 Forbidden"))
		require.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("typed rate limit error wins", func(t *testing.T) {
		err := mapGitHubError(nil, &github.RateLimitError{})
		require.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("anything else wraps upstream", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := mapGitHubError(nil, cause)
		require.ErrorIs(t, err, ErrUpstream)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
