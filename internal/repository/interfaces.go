package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pixiplay/platform/internal/catalog"
	"github.com/pixiplay/platform/internal/domain"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// UserRepository provides access to users.
type UserRepository interface {
	// FindByEmail returns a user by lowercased email, or nil if not found.
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.User, error)

	// FindByID returns a user by ID, or nil if not found.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.User, error)

	// Create inserts a new user. A duplicate email surfaces the underlying
	// unique-violation error for the caller to map.
	Create(ctx context.Context, db DBTX, user *domain.User) error
}

// GameRepository provides access to games.
type GameRepository interface {
	// Search returns one page of games for a catalog query.
	Search(ctx context.Context, db DBTX, q catalog.Query) ([]domain.Game, error)

	// Count returns the number of games matching the filter.
	Count(ctx context.Context, db DBTX, f catalog.Filter) (int64, error)

	// TopRated returns up to limit games ordered by rating desc then
	// review count desc.
	TopRated(ctx context.Context, db DBTX, limit int) ([]domain.Game, error)

	// List returns the full catalog, newest first.
	List(ctx context.Context, db DBTX) ([]domain.Game, error)

	// FindByID returns a game by ID, or nil if not found.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Game, error)

	// Create inserts a new game.
	Create(ctx context.Context, db DBTX, g *domain.Game) error

	// Update rewrites an existing game. Returns domain.ErrNotFound when the
	// id does not resolve.
	Update(ctx context.Context, db DBTX, g *domain.Game) error

	// Delete removes a game. Returns domain.ErrNotFound when the id does
	// not resolve.
	Delete(ctx context.Context, db DBTX, id uuid.UUID) error
}
