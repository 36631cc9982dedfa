package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pixiplay/platform/internal/catalog"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/repository"
	"github.com/pixiplay/platform/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGameRepo struct {
	byID map[uuid.UUID]*domain.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{byID: map[uuid.UUID]*domain.Game{}}
}

func (f *fakeGameRepo) Search(ctx context.Context, db repository.DBTX, q catalog.Query) ([]domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) Count(ctx context.Context, db repository.DBTX, filter catalog.Filter) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeGameRepo) TopRated(ctx context.Context, db repository.DBTX, limit int) ([]domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) List(ctx context.Context, db repository.DBTX) ([]domain.Game, error) {
	var games []domain.Game
	for _, g := range f.byID {
		games = append(games, *g)
	}
	return games, nil
}

func (f *fakeGameRepo) FindByID(ctx context.Context, db repository.DBTX, id uuid.UUID) (*domain.Game, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGameRepo) Create(ctx context.Context, db repository.DBTX, g *domain.Game) error {
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGameRepo) Update(ctx context.Context, db repository.DBTX, g *domain.Game) error {
	if _, ok := f.byID[g.ID]; !ok {
		return domain.ErrNotFound("game", g.ID.String())
	}
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGameRepo) Delete(ctx context.Context, db repository.DBTX, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound("game", id.String())
	}
	delete(f.byID, id)
	return nil
}

func newAdminService(repo *fakeGameRepo) *CatalogAdminService {
	return NewCatalogAdminService(nil, repo, security.NewGameSanitizer())
}

var admin = &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
var parent = &domain.User{ID: uuid.New(), Role: domain.RoleParent}

func validGameInput() domain.GameInput {
	return domain.GameInput{
		Title:           "Puzzle Planet",
		PlatformType:    domain.PlatformMobile,
		DifficultyLevel: domain.DifficultyEasy,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeGameRepo()
	svc := newAdminService(repo)

	game, err := svc.Create(context.Background(), admin, validGameInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, game.ID)
	assert.Equal(t, "Puzzle Planet", game.Title)
	assert.Equal(t, "No description available.", game.Description)
	assert.False(t, game.CreatedAt.IsZero())
	assert.Equal(t, game.CreatedAt, game.UpdatedAt)
	assert.Len(t, repo.byID, 1)
}

func TestCreate_SanitizesPayload(t *testing.T) {
	repo := newFakeGameRepo()
	svc := newAdminService(repo)

	in := validGameInput()
	in.Title = `Kart<script>alert(1)</script> Critters`
	in.Description = "<b>fast</b> and fun"
	in.ThumbnailURL = "javascript:alert(1)"

	game, err := svc.Create(context.Background(), admin, in)
	require.NoError(t, err)

	assert.Equal(t, "Kart Critters", game.Title)
	assert.Equal(t, "fast and fun", game.Description)
	assert.Empty(t, game.ThumbnailURL)
}

func TestCreate_NonAdminForbidden(t *testing.T) {
	repo := newFakeGameRepo()
	svc := newAdminService(repo)

	_, err := svc.Create(context.Background(), parent, validGameInput())
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)
	assert.Empty(t, repo.byID)
}

func TestCreate_NilActorUnauthorized(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	_, err := svc.Create(context.Background(), nil, validGameInput())
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestCreate_InvalidPayload(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	in := validGameInput()
	in.PlatformType = "Jukebox"
	_, err := svc.Create(context.Background(), admin, in)
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestUpdate_Success(t *testing.T) {
	repo := newFakeGameRepo()
	svc := newAdminService(repo)

	created, err := svc.Create(context.Background(), admin, validGameInput())
	require.NoError(t, err)
	createdAt := created.CreatedAt

	time.Sleep(time.Millisecond)

	in := validGameInput()
	in.Title = "Puzzle Planet Deluxe"
	updated, err := svc.Update(context.Background(), admin, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Puzzle Planet Deluxe", updated.Title)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(createdAt))
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	_, err := svc.Update(context.Background(), admin, uuid.New(), validGameInput())
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeGameRepo()
	svc := newAdminService(repo)

	created, err := svc.Create(context.Background(), admin, validGameInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), admin, created.ID))
	assert.Empty(t, repo.byID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	err := svc.Delete(context.Background(), admin, uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	_, err := svc.GetByID(context.Background(), admin, uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestList_NonAdminForbidden(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	_, err := svc.List(context.Background(), parent)
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)
}

func TestList_EmptyCatalogIsNotNil(t *testing.T) {
	svc := newAdminService(newFakeGameRepo())

	games, err := svc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}
