package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pixiplay/platform/internal/domain"
)

type contextKey string

const userKey contextKey = "auth_user"

// UserResolver resolves a token subject to the current user record. A nil
// user (no error) means the account no longer exists.
type UserResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserFromContext extracts the authenticated user from request context.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// Authenticate returns middleware that validates the bearer session token
// and resolves the subject to a live user record. The rejection message is
// deliberately uniform: a missing header, a tampered token, an expired one
// and a deleted account are indistinguishable to the caller.
func Authenticate(tokens *TokenManager, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolveRequestUser(r, tokens, users)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"code":"UNAUTHORIZED","message":"invalid or missing session token"}`))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveRequestUser(r *http.Request, tokens *TokenManager, users UserResolver) (*domain.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, fmt.Errorf("invalid Authorization format")
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	user, err := users.Resolve(r.Context(), userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user no longer exists")
	}

	return user, nil
}
