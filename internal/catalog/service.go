package catalog

import (
	"context"

	"github.com/pixiplay/platform/internal/domain"
)

// Store is the read surface the catalog service needs from the games table.
type Store interface {
	// Search returns one page of games matching the query.
	Search(ctx context.Context, q Query) ([]domain.Game, error)

	// Count returns the number of games matching the filter, ignoring
	// pagination.
	Count(ctx context.Context, f Filter) (int64, error)

	// TopRated returns the highest-rated games (rating desc, review count
	// desc), up to limit.
	TopRated(ctx context.Context, limit int) ([]domain.Game, error)
}

// Page is a single page of recommendation results plus paging metadata.
type Page struct {
	Games      []domain.Game `json:"games"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// Service answers public catalog queries.
type Service struct {
	store Store
}

// NewService creates a catalog Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Recommendations runs a filtered, sorted, paginated catalog query. A page
// past the end of the result set yields an empty games slice with the total
// and page count unchanged; it is not an error.
func (s *Service) Recommendations(ctx context.Context, q Query) (*Page, error) {
	total, err := s.store.Count(ctx, q.Filter)
	if err != nil {
		return nil, domain.ErrInternal("count games", err)
	}

	games := []domain.Game{}
	if int64(q.Offset()) < total {
		games, err = s.store.Search(ctx, q)
		if err != nil {
			return nil, domain.ErrInternal("search games", err)
		}
		if games == nil {
			games = []domain.Game{}
		}
	}

	return &Page{
		Games:      games,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
	}, nil
}

// HomeFeatured returns the fixed featured slice for the home page: the top
// games by average rating, review count breaking ties.
func (s *Service) HomeFeatured(ctx context.Context) ([]domain.Game, error) {
	games, err := s.store.TopRated(ctx, FeaturedCount)
	if err != nil {
		return nil, domain.ErrInternal("fetch featured games", err)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}
