package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pixiplay/platform/internal/catalog"
	"github.com/pixiplay/platform/internal/domain"
)

// CatalogStore binds a GameRepository to a database handle, satisfying
// catalog.Store for the public query service.
type CatalogStore struct {
	db    DBTX
	games GameRepository
}

// NewCatalogStore creates a catalog.Store over the given handle.
func NewCatalogStore(db DBTX, games GameRepository) *CatalogStore {
	return &CatalogStore{db: db, games: games}
}

func (s *CatalogStore) Search(ctx context.Context, q catalog.Query) ([]domain.Game, error) {
	return s.games.Search(ctx, s.db, q)
}

func (s *CatalogStore) Count(ctx context.Context, f catalog.Filter) (int64, error) {
	return s.games.Count(ctx, s.db, f)
}

func (s *CatalogStore) TopRated(ctx context.Context, limit int) ([]domain.Game, error) {
	return s.games.TopRated(ctx, s.db, limit)
}

// UserResolver binds a UserRepository to a database handle for the auth
// middleware, which resolves token subjects to live user records.
type UserResolver struct {
	db    DBTX
	users UserRepository
}

// NewUserResolver creates a UserResolver over the given handle.
func NewUserResolver(db DBTX, users UserRepository) *UserResolver {
	return &UserResolver{db: db, users: users}
}

// Resolve returns the user for the given id, or nil if no longer present.
func (r *UserResolver) Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.users.FindByID(ctx, r.db, id)
}
