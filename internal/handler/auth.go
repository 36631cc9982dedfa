package handler

import (
	"net/http"

	"github.com/pixiplay/platform/internal/auth"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/service"
)

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	auths *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auths *service.AuthService) *AuthHandler {
	return &AuthHandler{auths: auths}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	result, err := h.auths.Register(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, result)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	result, err := h.auths.Login(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, result)
}

// Me handles GET /api/auth/me. Requires the auth middleware upstream.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		RespondError(w, domain.ErrUnauthorized("invalid or missing session token"))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// Logout handles POST /api/auth/logout. Sessions are stateless bearer
// tokens, so the server has nothing to revoke; the endpoint exists so
// clients have a uniform sign-out call.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
