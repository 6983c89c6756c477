package http

import (
	"net/http"

	"github.com/dkorolev/repoboard/internal/utils"
)

// health handles GET /health. It always answers 200; the payload carries
// the actual per-datastore state so load balancers and humans can tell a
// degraded instance from a dead one.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Check(r.Context())
	utils.WriteJSON(w, report, http.StatusOK) //nolint:errcheck
}
