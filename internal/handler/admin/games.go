// Package admin holds handlers for the authorization-gated catalog
// management endpoints.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pixiplay/platform/internal/auth"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/handler"
	"github.com/pixiplay/platform/internal/service"
)

// GameHandler serves the admin game CRUD endpoints. Authorization decisions
// live in the service layer; the handler only shuttles HTTP.
type GameHandler struct {
	games *service.CatalogAdminService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games *service.CatalogAdminService) *GameHandler {
	return &GameHandler{games: games}
}

// List handles GET /api/games.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.List(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"games": games})
}

// Get handles GET /api/games/{gameID}.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseGameID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	game, err := h.games.GetByID(r.Context(), auth.UserFromContext(r.Context()), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, game)
}

// Create handles POST /api/games.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.GameInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	game, err := h.games.Create(r.Context(), auth.UserFromContext(r.Context()), input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, game)
}

// Update handles PUT /api/games/{gameID}.
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseGameID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	var input domain.GameInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	game, err := h.games.Update(r.Context(), auth.UserFromContext(r.Context()), id, input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, game)
}

// Delete handles DELETE /api/games/{gameID}.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseGameID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	if err := h.games.Delete(r.Context(), auth.UserFromContext(r.Context()), id); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"message": "game deleted"})
}

func parseGameID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		return uuid.Nil, domain.ErrValidation("invalid game id")
	}
	return id, nil
}
