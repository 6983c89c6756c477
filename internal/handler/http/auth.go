package http

import (
	"encoding/json"
	"net/http"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/store"
	"github.com/dkorolev/repoboard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	writeSuccess(w, models.AuthResponse{
		User:  registeredUser.Identity(),
		Token: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	writeSuccess(w, models.AuthResponse{
		User:  foundUser.Identity(),
		Token: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateUser(ctx, identity.ID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", updatedUser.UserID).Msg("account updated")

	writeSuccess(w, updatedUser.Identity(), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(r)
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	deleted, err := h.services.AuthService.DeleteUser(ctx, identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, store.ErrNoUserWasFound)
		return
	}

	log.Info().Int64("id", identity.ID).Msg("account deleted")

	writeSuccess(w, nil, http.StatusOK)
}
