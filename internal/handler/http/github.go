package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/models"
)

// importRepo handles POST /api/github: it fetches repository metadata from
// GitHub by "owner/name" path and stores it as a new project of the caller.
func (h *Handler) importRepo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	project, err := h.services.ProjectService.ImportFromGitHub(ctx, identity.ID, req.RepoPath)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().
		Str("repo_path", req.RepoPath).
		Str("project_id", project.ID.Hex()).
		Msg("repository imported")

	writeSuccess(w, project, http.StatusCreated)
}

// checkRepo handles GET /api/github/check/{owner}/{repo}: it reports whether
// the repository is already in the caller's projects and whether it exists
// on GitHub at all.
func (h *Handler) checkRepo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	repoPath := fmt.Sprintf("%s/%s", chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))

	check, err := h.services.ProjectService.CheckRepo(ctx, identity.ID, repoPath)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, check, http.StatusOK)
}
