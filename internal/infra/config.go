package infra

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	// Database
	DatabaseURL string `env:"DATABASE_URL"`
	PGHost      string `env:"PGHOST" envDefault:"localhost"`
	PGPort      int    `env:"PGPORT" envDefault:"5432"`
	PGUser      string `env:"PGUSER" envDefault:"pixiplay"`
	PGPassword  string `env:"PGPASSWORD" envDefault:"pixiplay"`
	PGDatabase  string `env:"PGDATABASE" envDefault:"pixiplay"`

	// Sessions
	JWTSecret  string `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTExpiry  string `env:"JWT_EXPIRY" envDefault:"24h"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"12"`

	// Server
	APIPort            int    `env:"API_PORT" envDefault:"5000"`
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	// Rate limiting (per client IP, fixed window)
	AuthRateLimit   int    `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AdminRateLimit  int    `env:"ADMIN_RATE_LIMIT" envDefault:"50"`
	RateLimitWindow string `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`

	// PayPal (donation flow); empty base URL targets the sandbox
	PayPalClientID string `env:"PAYPAL_CLIENT_ID"`
	PayPalSecret   string `env:"PAYPAL_SECRET"`
	PayPalBaseURL  string `env:"PAYPAL_BASE_URL"`

	// Seed CLI
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@pixiplay.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Dev
	AllowInsecureDefaults bool `env:"ALLOW_INSECURE_DEFAULTS" envDefault:"false"`
}

// LoadConfig parses environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks for insecure configuration that must not run in production.
// Set ALLOW_INSECURE_DEFAULTS=true to bypass (local dev only).
func (c *Config) Validate() error {
	if c.AllowInsecureDefaults {
		return nil
	}
	if c.JWTSecret == "change-me-in-production" {
		return fmt.Errorf("JWT_SECRET is set to the insecure default; set a strong secret or set ALLOW_INSECURE_DEFAULTS=true for local dev")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is too short (%d chars); minimum 32 characters required", len(c.JWTSecret))
	}
	if c.BcryptCost < 12 {
		return fmt.Errorf("BCRYPT_COST %d is below the minimum of 12", c.BcryptCost)
	}
	return nil
}

// DSN returns the PostgreSQL connection string, preferring DATABASE_URL if set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}
