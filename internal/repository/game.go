package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pixiplay/platform/internal/catalog"
	"github.com/pixiplay/platform/internal/domain"
)

// PgGameRepository implements GameRepository using pgx.
type PgGameRepository struct{}

// NewPgGameRepository creates a new PgGameRepository.
func NewPgGameRepository() *PgGameRepository {
	return &PgGameRepository{}
}

const gameColumns = `id, title, description, developer, publisher, release_year,
	primary_genre, genres, gameplay_style, average_user_rating, rating_count,
	meta_score, popularity_score, content_suitability, target_skills,
	difficulty_level, platform_type, platform, embed_url, thumbnail_url,
	created_at, updated_at`

// Search returns one page of games for a catalog query.
func (r *PgGameRepository) Search(ctx context.Context, db DBTX, q catalog.Query) ([]domain.Game, error) {
	where, args := buildFilter(q.Filter)
	sql := fmt.Sprintf(`SELECT %s FROM games%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		gameColumns, where, orderBy(q.Sort), len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	defer rows.Close()
	return collectGames(rows)
}

// Count returns the number of games matching the filter.
func (r *PgGameRepository) Count(ctx context.Context, db DBTX, f catalog.Filter) (int64, error) {
	where, args := buildFilter(f)
	var total int64
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM games`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return total, nil
}

// TopRated returns up to limit games ordered by rating then review count.
func (r *PgGameRepository) TopRated(ctx context.Context, db DBTX, limit int) ([]domain.Game, error) {
	rows, err := db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM games ORDER BY average_user_rating DESC, rating_count DESC, id LIMIT $1`,
		gameColumns), limit)
	if err != nil {
		return nil, fmt.Errorf("top rated games: %w", err)
	}
	defer rows.Close()
	return collectGames(rows)
}

// List returns the full catalog, newest first.
func (r *PgGameRepository) List(ctx context.Context, db DBTX) ([]domain.Game, error) {
	rows, err := db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM games ORDER BY created_at DESC, id`, gameColumns))
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()
	return collectGames(rows)
}

// FindByID returns a game by ID, or nil if not found.
func (r *PgGameRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Game, error) {
	row := db.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM games WHERE id = $1`, gameColumns), id)
	g, err := scanGame(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a new game.
func (r *PgGameRepository) Create(ctx context.Context, db DBTX, g *domain.Game) error {
	_, err := db.Exec(ctx, `
		INSERT INTO games (id, title, description, developer, publisher, release_year,
			primary_genre, genres, gameplay_style, average_user_rating, rating_count,
			meta_score, popularity_score, content_suitability, target_skills,
			difficulty_level, platform_type, platform, embed_url, thumbnail_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22)`,
		g.ID, g.Title, g.Description, g.Developer, g.Publisher, g.ReleaseYear,
		g.PrimaryGenre, g.Genres, g.GameplayStyle, g.AverageUserRating, g.RatingCount,
		g.MetaScore, g.PopularityScore, g.ContentSuitability, g.TargetSkills,
		g.DifficultyLevel, g.PlatformType, g.Platform, g.EmbedURL, g.ThumbnailURL,
		g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// Update rewrites an existing game.
func (r *PgGameRepository) Update(ctx context.Context, db DBTX, g *domain.Game) error {
	tag, err := db.Exec(ctx, `
		UPDATE games SET title = $2, description = $3, developer = $4, publisher = $5,
			release_year = $6, primary_genre = $7, genres = $8, gameplay_style = $9,
			average_user_rating = $10, rating_count = $11, meta_score = $12,
			popularity_score = $13, content_suitability = $14, target_skills = $15,
			difficulty_level = $16, platform_type = $17, platform = $18,
			embed_url = $19, thumbnail_url = $20, updated_at = $21
		WHERE id = $1`,
		g.ID, g.Title, g.Description, g.Developer, g.Publisher, g.ReleaseYear,
		g.PrimaryGenre, g.Genres, g.GameplayStyle, g.AverageUserRating, g.RatingCount,
		g.MetaScore, g.PopularityScore, g.ContentSuitability, g.TargetSkills,
		g.DifficultyLevel, g.PlatformType, g.Platform, g.EmbedURL, g.ThumbnailURL,
		g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("game", g.ID.String())
	}
	return nil
}

// Delete removes a game.
func (r *PgGameRepository) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("game", id.String())
	}
	return nil
}

// buildFilter maps a sanitized catalog filter onto a WHERE clause. All
// clauses AND together; string terms become anchored-nowhere ILIKE patterns
// with LIKE metacharacters escaped so user input always matches literally.
func buildFilter(f catalog.Filter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Genre != "" {
		add(`EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE g ILIKE $%d)`, likePattern(f.Genre))
	}
	if f.Platform != "" {
		add(`platform_type ILIKE $%d`, likePattern(f.Platform))
	}
	if f.Content != "" {
		add(`content_suitability ILIKE $%d`, likePattern(f.Content))
	}
	if f.Search != "" {
		add(`title ILIKE $%d`, likePattern(f.Search))
	}
	if f.MinRating != nil {
		add(`average_user_rating >= $%d`, *f.MinRating)
	}
	if f.MinReviews != nil {
		add(`rating_count >= $%d`, *f.MinReviews)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy maps the sort selector onto a whitelisted ORDER BY expression.
// A trailing id keeps page boundaries stable across requests.
func orderBy(s catalog.Sort) string {
	switch s {
	case catalog.SortRating:
		return "average_user_rating DESC, id"
	case catalog.SortReviews:
		return "rating_count DESC, id"
	case catalog.SortRecent:
		return "release_year DESC, id"
	default:
		return "popularity_score DESC, average_user_rating DESC, rating_count DESC, id"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a literal term in ILIKE wildcards, escaping the LIKE
// metacharacters inside it.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func collectGames(rows pgx.Rows) ([]domain.Game, error) {
	var games []domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return games, nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	g := &domain.Game{}
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Developer, &g.Publisher,
		&g.ReleaseYear, &g.PrimaryGenre, &g.Genres, &g.GameplayStyle,
		&g.AverageUserRating, &g.RatingCount, &g.MetaScore, &g.PopularityScore,
		&g.ContentSuitability, &g.TargetSkills, &g.DifficultyLevel,
		&g.PlatformType, &g.Platform, &g.EmbedURL, &g.ThumbnailURL,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}
