package handler

import (
	"net/http"

	"github.com/pixiplay/platform/internal/catalog"
)

// CatalogHandler serves the public catalog endpoints.
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// Home handles GET /api/games/home: the fixed featured slice for the
// landing page.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.HomeFeatured(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// Recommendations handles GET /api/games/recommendations with filter, sort
// and pagination query parameters. Malformed parameters fall back to
// defaults rather than erroring.
func (h *CatalogHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	q := catalog.ParseQuery(r.URL.Query())

	page, err := h.catalog.Recommendations(r.Context(), q)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, page)
}
