// Command seed provisions the administrator account and, when the catalog
// is empty, a starter set of games. Registration never grants the admin
// role, so this is the only path to an admin login.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pixiplay/platform/internal/catalog"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/infra"
	"github.com/pixiplay/platform/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if err := domain.ValidatePassword(cfg.AdminPassword); err != nil {
		return fmt.Errorf("ADMIN_PASSWORD: %w", err)
	}

	pool, err := infra.NewPostgresPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if err := infra.RunMigrations(cfg.DSN(), logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := seedAdmin(ctx, pool, cfg, logger); err != nil {
		return err
	}
	return seedGames(ctx, pool, logger)
}

// seedAdmin creates the admin account, or refreshes its password and role
// when it already exists.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, cfg *infra.Config, logger *slog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if err := domain.ValidateEmail(email); err != nil {
		return fmt.Errorf("ADMIN_EMAIL: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	users := repository.NewPgUserRepository()
	existing, err := users.FindByEmail(ctx, pool, email)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}

	if existing == nil {
		admin := &domain.User{
			ID:           uuid.New(),
			Name:         "Administrator",
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		}
		if err := users.Create(ctx, pool, admin); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		logger.Info("admin account created", "email", email)
		return nil
	}

	_, err = pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, role = $3, updated_at = now() WHERE id = $1`,
		existing.ID, string(hash), domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	logger.Info("admin account refreshed", "email", email)
	return nil
}

// seedGames inserts a starter catalog, but only into an empty games table.
func seedGames(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	games := repository.NewPgGameRepository()

	existing, err := games.Count(ctx, pool, catalog.Filter{})
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}
	if existing > 0 {
		logger.Info("catalog already populated, skipping game seed", "count", existing)
		return nil
	}

	now := time.Now().UTC()
	for _, input := range starterGames() {
		input.Normalize()
		if err := input.Validate(); err != nil {
			return fmt.Errorf("starter game %q: %w", input.Title, err)
		}
		game := &domain.Game{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
		input.Apply(game)
		if err := games.Create(ctx, pool, game); err != nil {
			return fmt.Errorf("insert starter game %q: %w", input.Title, err)
		}
	}
	logger.Info("starter catalog seeded", "count", len(starterGames()))
	return nil
}
