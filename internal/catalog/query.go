// Package catalog implements the public catalog query surface: one pure
// filter builder that maps request parameters onto a structured store
// query, and a service producing paginated recommendation results.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLimit is the page size when the caller does not supply one.
	DefaultLimit = 12
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 50
	// FeaturedCount is the fixed size of the home/featured slice.
	FeaturedCount = 12

	maxFilterLen = 50
	maxSearchLen = 100

	maxMinRating  = 5
	maxMinReviews = 1_000_000
)

// Sort selects the result ordering. Unknown values fall back to popularity.
type Sort string

const (
	SortPopularity Sort = "popularity"
	SortRating     Sort = "rating"
	SortReviews    Sort = "reviews"
	SortRecent     Sort = "recent"
)

// Filter holds the sanitized filter terms. All present terms combine with
// logical AND; string terms are case-insensitive substring matches.
type Filter struct {
	Genre    string // matched against each element of genres
	Platform string // matched against platform_type
	Content  string // matched against content_suitability
	Search   string // matched against title

	MinRating  *float64 // average_user_rating >= value, only valid in [0,5]
	MinReviews *int     // rating_count >= value, only valid in [0,1_000_000]
}

// Query is a complete, sanitized recommendation query.
type Query struct {
	Filter
	Sort  Sort
	Page  int
	Limit int
}

// Offset returns the skip count for the 1-indexed page.
func (q Query) Offset() int { return (q.Page - 1) * q.Limit }

// ParseQuery builds a Query from raw request parameters. String filters are
// trimmed and truncated to a bounded length so attacker-supplied patterns
// cannot blow up match cost; numeric filters outside their valid range are
// dropped rather than rejected.
func ParseQuery(values url.Values) Query {
	q := Query{
		Filter: Filter{
			Genre:    sanitizeTerm(values.Get("genre"), maxFilterLen),
			Platform: sanitizeTerm(values.Get("platform"), maxFilterLen),
			Content:  sanitizeTerm(values.Get("content"), maxFilterLen),
			Search:   sanitizeTerm(values.Get("search"), maxSearchLen),
		},
		Sort:  parseSort(values.Get("sort")),
		Page:  parsePositiveInt(values.Get("page"), 1),
		Limit: parsePositiveInt(values.Get("limit"), DefaultLimit),
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	if v, err := strconv.ParseFloat(values.Get("minRating"), 64); err == nil && v >= 0 && v <= maxMinRating {
		q.MinRating = &v
	}
	if v, err := strconv.Atoi(values.Get("minReviews")); err == nil && v >= 0 && v <= maxMinReviews {
		q.MinReviews = &v
	}

	return q
}

// TotalPages returns ceil(total/limit) for the pagination metadata.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// sanitizeTerm trims and truncates a filter term. The cut lands on a rune
// boundary: slicing mid-rune would hand Postgres an invalid-UTF-8 ILIKE
// parameter and fail the whole query.
func sanitizeTerm(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

func parseSort(s string) Sort {
	switch Sort(s) {
	case SortRating, SortReviews, SortRecent:
		return Sort(s)
	default:
		return SortPopularity
	}
}

func parsePositiveInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}
