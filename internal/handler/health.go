package handler

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pixiplay/platform/internal/infra"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	pool *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Health handles GET /api/health. It reports degraded (503) when the
// database is unreachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := infra.HealthCheck(r.Context(), h.pool); err != nil {
		RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
