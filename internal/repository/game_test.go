package repository

import (
	"strings"
	"testing"

	"github.com/pixiplay/platform/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePattern_EscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `%puzzle%`, likePattern("puzzle"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestBuildFilter_Empty(t *testing.T) {
	where, args := buildFilter(catalog.Filter{})
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestBuildFilter_AllClausesAnd(t *testing.T) {
	rating := 4.0
	reviews := 50
	where, args := buildFilter(catalog.Filter{
		Genre:      "Puzzle",
		Platform:   "Mobile",
		Content:    "Everyone",
		Search:     "planet",
		MinRating:  &rating,
		MinReviews: &reviews,
	})

	require.Len(t, args, 6)
	assert.Equal(t, 5, strings.Count(where, " AND "))
	assert.Contains(t, where, "unnest(genres)")
	assert.Contains(t, where, "platform_type ILIKE")
	assert.Contains(t, where, "content_suitability ILIKE")
	assert.Contains(t, where, "title ILIKE")
	assert.Contains(t, where, "average_user_rating >= $5")
	assert.Contains(t, where, "rating_count >= $6")
	assert.Equal(t, "%planet%", args[3])
	assert.Equal(t, 4.0, args[4])
	assert.Equal(t, 50, args[5])
}

func TestBuildFilter_PlaceholdersSequential(t *testing.T) {
	where, args := buildFilter(catalog.Filter{Platform: "PC", Search: "kart"})

	require.Len(t, args, 2)
	assert.Contains(t, where, "platform_type ILIKE $1")
	assert.Contains(t, where, "title ILIKE $2")
}

func TestOrderBy_WhitelistedSorts(t *testing.T) {
	assert.Equal(t, "average_user_rating DESC, id", orderBy(catalog.SortRating))
	assert.Equal(t, "rating_count DESC, id", orderBy(catalog.SortReviews))
	assert.Equal(t, "release_year DESC, id", orderBy(catalog.SortRecent))
}

func TestOrderBy_DefaultIsPopularity(t *testing.T) {
	want := "popularity_score DESC, average_user_rating DESC, rating_count DESC, id"
	assert.Equal(t, want, orderBy(catalog.SortPopularity))
	assert.Equal(t, want, orderBy(catalog.Sort("garbage")))
}
