package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/policy"
	"github.com/pixiplay/platform/internal/repository"
	"github.com/pixiplay/platform/internal/security"
)

// CatalogAdminService is the authorization-gated CRUD surface over the game
// catalog. Every operation authorizes the acting user through the policy
// package and sanitizes payloads before they reach the store.
type CatalogAdminService struct {
	pool      *pgxpool.Pool
	games     repository.GameRepository
	sanitizer *security.GameSanitizer
}

// NewCatalogAdminService creates a new CatalogAdminService.
func NewCatalogAdminService(pool *pgxpool.Pool, games repository.GameRepository, sanitizer *security.GameSanitizer) *CatalogAdminService {
	return &CatalogAdminService{pool: pool, games: games, sanitizer: sanitizer}
}

// List returns the full catalog, newest first.
func (s *CatalogAdminService) List(ctx context.Context, actor *domain.User) ([]domain.Game, error) {
	if err := policy.Authorize(actor, policy.ActionList, "game"); err != nil {
		return nil, err
	}
	games, err := s.games.List(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list games", err)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}

// GetByID returns a single game.
func (s *CatalogAdminService) GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Game, error) {
	if err := policy.Authorize(actor, policy.ActionView, "game"); err != nil {
		return nil, err
	}
	game, err := s.games.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find game", err)
	}
	if game == nil {
		return nil, domain.ErrNotFound("game", id.String())
	}
	return game, nil
}

// Create sanitizes, validates and persists a new game.
func (s *CatalogAdminService) Create(ctx context.Context, actor *domain.User, input domain.GameInput) (*domain.Game, error) {
	if err := policy.Authorize(actor, policy.ActionCreate, "game"); err != nil {
		return nil, err
	}

	s.sanitizer.SanitizeGame(&input)
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	game := &domain.Game{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	input.Apply(game)

	if err := s.games.Create(ctx, s.pool, game); err != nil {
		return nil, domain.ErrInternal("create game", err)
	}
	return game, nil
}

// Update sanitizes, validates and rewrites an existing game, refreshing
// updated_at.
func (s *CatalogAdminService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.GameInput) (*domain.Game, error) {
	if err := policy.Authorize(actor, policy.ActionUpdate, "game"); err != nil {
		return nil, err
	}

	existing, err := s.games.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find game", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound("game", id.String())
	}

	s.sanitizer.SanitizeGame(&input)
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	input.Apply(existing)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.games.Update(ctx, s.pool, existing); err != nil {
		if appErr, ok := err.(*domain.AppError); ok {
			return nil, appErr
		}
		return nil, domain.ErrInternal("update game", err)
	}
	return existing, nil
}

// Delete removes a game.
func (s *CatalogAdminService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if err := policy.Authorize(actor, policy.ActionDelete, "game"); err != nil {
		return err
	}
	if err := s.games.Delete(ctx, s.pool, id); err != nil {
		if appErr, ok := err.(*domain.AppError); ok {
			return appErr
		}
		return domain.ErrInternal("delete game", err)
	}
	return nil
}
