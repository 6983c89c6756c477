package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	projects, err := h.services.ProjectService.List(ctx, identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, projects, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	project, err := h.services.ProjectService.Create(ctx, identity.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("project_id", project.ID.Hex()).Msg("project created")

	writeSuccess(w, project, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	projectID := chi.URLParam(r, "id")
	project, err := h.services.ProjectService.Update(ctx, identity.ID, projectID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("project_id", projectID).Msg("project updated")

	writeSuccess(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	projectID := chi.URLParam(r, "id")
	if err := h.services.ProjectService.Delete(ctx, identity.ID, projectID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("project_id", projectID).Msg("project deleted")

	writeSuccess(w, nil, http.StatusOK)
}
