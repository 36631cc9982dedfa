package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	games     []domain.Game
	total     int64
	searchErr error
	countErr  error

	lastQuery  Query
	searchHits int
}

func (f *fakeStore) Search(ctx context.Context, q Query) ([]domain.Game, error) {
	f.lastQuery = q
	f.searchHits++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.games, nil
}

func (f *fakeStore) Count(ctx context.Context, filter Filter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakeStore) TopRated(ctx context.Context, limit int) ([]domain.Game, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.games) {
		return f.games[:limit], nil
	}
	return f.games, nil
}

func makeGames(n int) []domain.Game {
	games := make([]domain.Game, n)
	for i := range games {
		games[i] = domain.Game{ID: uuid.New(), Title: fmt.Sprintf("Game %d", i)}
	}
	return games
}

func TestRecommendations_FirstPage(t *testing.T) {
	store := &fakeStore{games: makeGames(12), total: 25}
	svc := NewService(store)

	page, err := svc.Recommendations(context.Background(), Query{Page: 1, Limit: 12})
	require.NoError(t, err)

	assert.Len(t, page.Games, 12)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
}

func TestRecommendations_PageBeyondTotal(t *testing.T) {
	store := &fakeStore{games: makeGames(12), total: 25}
	svc := NewService(store)

	page, err := svc.Recommendations(context.Background(), Query{Page: 5, Limit: 12})
	require.NoError(t, err)

	// Offset 48 is past the 25 matches: empty page, metadata intact, and
	// the store is never asked to search.
	assert.Empty(t, page.Games)
	assert.NotNil(t, page.Games)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 5, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 0, store.searchHits)
}

func TestRecommendations_EmptyCatalog(t *testing.T) {
	store := &fakeStore{total: 0}
	svc := NewService(store)

	page, err := svc.Recommendations(context.Background(), Query{Page: 1, Limit: 12})
	require.NoError(t, err)

	assert.NotNil(t, page.Games)
	assert.Empty(t, page.Games)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestRecommendations_CountError(t *testing.T) {
	store := &fakeStore{countErr: fmt.Errorf("connection refused")}
	svc := NewService(store)

	_, err := svc.Recommendations(context.Background(), Query{Page: 1, Limit: 12})
	require.Error(t, err)

	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.Status)
}

func TestHomeFeatured(t *testing.T) {
	store := &fakeStore{games: makeGames(20)}
	svc := NewService(store)

	games, err := svc.HomeFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, FeaturedCount)
}

func TestHomeFeatured_EmptyCatalog(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	games, err := svc.HomeFeatured(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}
