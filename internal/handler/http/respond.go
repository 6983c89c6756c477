package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/service"
	"github.com/dkorolev/repoboard/internal/utils"
	"github.com/dkorolev/repoboard/internal/validators"
	"github.com/dkorolev/repoboard/models"
)

// writeSuccess writes the uniform success envelope with the given payload.
func writeSuccess(w http.ResponseWriter, data any, statusCode int) {
	utils.WriteJSON(w, models.Response{Success: true, Data: data}, statusCode) //nolint:errcheck // headers already sent
}

// writeError maps the error to an HTTP status via [statusFromError] and
// writes the failure envelope. Validation errors additionally carry the
// per-field problem list; 5xx responses always get a generic message so
// that internals never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	resp := models.Response{Error: err.Error()}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		resp.Details = validationErr.Problems
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		resp.Error = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status) //nolint:errcheck // headers already sent
}

// writeBadJSON is the shared rejection for undecodable request bodies. The
// decode error is folded into [service.ErrInvalidDataProvided] so that the
// status mapping stays in one place.
func writeBadJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrInvalidDataProvided))
}
