package app

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pixiplay/platform/internal/auth"
	"github.com/pixiplay/platform/internal/catalog"
	"github.com/pixiplay/platform/internal/guard"
	"github.com/pixiplay/platform/internal/handler"
	adminhandler "github.com/pixiplay/platform/internal/handler/admin"
	"github.com/pixiplay/platform/internal/provider"
	"github.com/pixiplay/platform/internal/repository"
	"github.com/pixiplay/platform/internal/security"
	"github.com/pixiplay/platform/internal/service"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool   *pgxpool.Pool
	Tokens *auth.TokenManager
	Logger *slog.Logger

	BcryptCost         int
	CORSAllowedOrigins string

	// Per-client-IP fixed-window rate limits
	AuthRateLimit   int
	AdminRateLimit  int
	RateLimitWindow time.Duration

	// PayPal credentials for the donation flow
	PayPalClientID string
	PayPalSecret   string
	PayPalBaseURL  string
}

// Limiters are the rate limiters NewRouter started; the caller stops them
// on shutdown.
type Limiters struct {
	Auth  *guard.RateLimiter
	Admin *guard.RateLimiter
}

// Stop terminates the limiters' background sweeps.
func (l Limiters) Stop() {
	l.Auth.Stop()
	l.Admin.Stop()
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) (chi.Router, Limiters) {
	pool := deps.Pool
	logger := deps.Logger

	// Repositories
	userRepo := repository.NewPgUserRepository()
	gameRepo := repository.NewPgGameRepository()

	// Store adapters over the pool
	catalogStore := repository.NewCatalogStore(pool, gameRepo)
	userResolver := repository.NewUserResolver(pool, userRepo)

	// External providers
	paypal := provider.NewPayPalProvider(deps.PayPalClientID, deps.PayPalSecret, deps.PayPalBaseURL)

	// Services
	authSvc := service.NewAuthService(pool, userRepo, deps.Tokens, deps.BcryptCost)
	catalogSvc := catalog.NewService(catalogStore)
	adminSvc := service.NewCatalogAdminService(pool, gameRepo, security.NewGameSanitizer())

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	donationHandler := handler.NewDonationHandler(paypal)
	healthHandler := handler.NewHealthHandler(pool)
	gameAdmin := adminhandler.NewGameHandler(adminSvc)

	// Rate limiters (fixed window, keyed by client IP)
	authLimiter := guard.NewRateLimiter(deps.AuthRateLimit, deps.RateLimitWindow)
	adminLimiter := guard.NewRateLimiter(deps.AdminRateLimit, deps.RateLimitWindow)

	authenticate := auth.Authenticate(deps.Tokens, userResolver)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORSWithOrigins(deps.CORSAllowedOrigins))
	r.Use(handler.JSONContentType)

	r.Route("/api", func(r chi.Router) {
		// Health (no auth)
		r.Get("/health", healthHandler.Health)

		// Auth routes: register and login are rate limited; me and logout
		// require a session
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(handler.RateLimit(authLimiter, logger))
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Route("/games", func(r chi.Router) {
			// Public catalog reads (no auth)
			r.Get("/home", catalogHandler.Home)
			r.Get("/recommendations", catalogHandler.Recommendations)

			// Admin catalog management: session required, role checked in
			// the service layer
			r.Group(func(r chi.Router) {
				r.Use(handler.RateLimit(adminLimiter, logger))
				r.Use(authenticate)

				r.Get("/", gameAdmin.List)
				r.Post("/", gameAdmin.Create)
				r.Get("/{gameID}", gameAdmin.Get)
				r.Put("/{gameID}", gameAdmin.Update)
				r.Delete("/{gameID}", gameAdmin.Delete)
			})
		})

		// Donations (no auth; anonymous donors are welcome)
		r.Route("/donations", func(r chi.Router) {
			r.Use(handler.RateLimit(adminLimiter, logger))
			r.Post("/orders", donationHandler.CreateOrder)
			r.Post("/orders/{orderID}/capture", donationHandler.CaptureOrder)
		})
	})

	return r, Limiters{Auth: authLimiter, Admin: adminLimiter}
}
