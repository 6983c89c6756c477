package http

import (
	"errors"
	"net/http"

	"github.com/dkorolev/repoboard/internal/adapter"
	"github.com/dkorolev/repoboard/internal/service"
	"github.com/dkorolev/repoboard/internal/store"
	"github.com/dkorolev/repoboard/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	adapter.ErrInvalidRepoPath:    http.StatusBadRequest,
	adapter.ErrRepositoryNotFound: http.StatusBadRequest,
	adapter.ErrRateLimited:        http.StatusBadRequest,
	adapter.ErrUpstream:           http.StatusBadRequest,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrProjectNameTaken:       http.StatusConflict,
	store.ErrProjectAlreadyImported: http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrProjectNotFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
