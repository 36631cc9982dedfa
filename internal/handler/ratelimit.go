package handler

import (
	"log/slog"
	"net/http"

	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/guard"
)

// RateLimit returns middleware that throttles requests per client IP using
// the given fixed-window limiter. Blocked requests get a 429 with a
// retryAfter hint and Retry-After header.
func RateLimit(rl *guard.RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)
			decision := rl.Check(key)
			if !decision.Allowed {
				logger.Warn("rate limit exceeded",
					"client_ip", key,
					"path", r.URL.Path,
				)
				RespondError(w, domain.ErrRateLimited(guard.RetryAfterSeconds(decision.RetryAfter)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
