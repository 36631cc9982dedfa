package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty levels for a game.
const (
	DifficultyEasy        = "Easy"
	DifficultyMedium      = "Medium"
	DifficultyChallenging = "Challenging"
)

// Platform types for a game.
const (
	PlatformMobile        = "Mobile"
	PlatformConsole       = "Console"
	PlatformPC            = "PC"
	PlatformCrossPlatform = "Cross-Platform"
	PlatformWeb           = "Web"
)

const defaultDescription = "No description available."

// PlatformTypes returns the closed set of valid platform_type values.
func PlatformTypes() []string {
	return []string{PlatformMobile, PlatformConsole, PlatformPC, PlatformCrossPlatform, PlatformWeb}
}

// DifficultyLevels returns the closed set of valid difficulty_level values.
func DifficultyLevels() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyChallenging}
}

// ValidPlatformType reports whether s is an allowed platform_type.
func ValidPlatformType(s string) bool {
	for _, p := range PlatformTypes() {
		if s == p {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether s is an allowed difficulty_level.
func ValidDifficulty(s string) bool {
	for _, d := range DifficultyLevels() {
		if s == d {
			return true
		}
	}
	return false
}

// Game represents a games row.
type Game struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Developer          string    `json:"developer,omitempty"`
	Publisher          string    `json:"publisher,omitempty"`
	ReleaseYear        int       `json:"release_year,omitempty"`
	PrimaryGenre       string    `json:"primary_genre,omitempty"`
	Genres             []string  `json:"genres"`
	GameplayStyle      string    `json:"gameplay_style,omitempty"`
	AverageUserRating  float64   `json:"average_user_rating"`
	RatingCount        int       `json:"rating_count"`
	MetaScore          float64   `json:"meta_score,omitempty"`
	PopularityScore    float64   `json:"popularity_score"`
	ContentSuitability string    `json:"content_suitability"`
	TargetSkills       []string  `json:"target_skills"`
	DifficultyLevel    string    `json:"difficulty_level"`
	PlatformType       string    `json:"platform_type"`
	Platform           []string  `json:"platform"`
	EmbedURL           string    `json:"embed_url,omitempty"`
	ThumbnailURL       string    `json:"thumbnail_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// GameInput is the admin create/update payload for a game. It carries the
// same fields as Game minus the server-generated identity and timestamps.
type GameInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Developer          string   `json:"developer"`
	Publisher          string   `json:"publisher"`
	ReleaseYear        int      `json:"release_year"`
	PrimaryGenre       string   `json:"primary_genre"`
	Genres             []string `json:"genres"`
	GameplayStyle      string   `json:"gameplay_style"`
	AverageUserRating  float64  `json:"average_user_rating"`
	RatingCount        int      `json:"rating_count"`
	MetaScore          float64  `json:"meta_score"`
	PopularityScore    float64  `json:"popularity_score"`
	ContentSuitability string   `json:"content_suitability"`
	TargetSkills       []string `json:"target_skills"`
	DifficultyLevel    string   `json:"difficulty_level"`
	PlatformType       string   `json:"platform_type"`
	Platform           []string `json:"platform"`
	EmbedURL           string   `json:"embed_url"`
	ThumbnailURL       string   `json:"thumbnail_url"`
}

// Normalize fills schema defaults on an input payload.
func (in *GameInput) Normalize() {
	if in.Description == "" {
		in.Description = defaultDescription
	}
	if in.ContentSuitability == "" {
		in.ContentSuitability = "Everyone"
	}
	if in.DifficultyLevel == "" {
		in.DifficultyLevel = DifficultyEasy
	}
	if in.Genres == nil {
		in.Genres = []string{}
	}
	if in.TargetSkills == nil {
		in.TargetSkills = []string{}
	}
	if in.Platform == nil {
		in.Platform = []string{}
	}
}

// Validate checks the field constraints enforced at the store boundary.
func (in *GameInput) Validate() error {
	if in.Title == "" {
		return ErrValidation("title is required")
	}
	if !ValidPlatformType(in.PlatformType) {
		return ErrValidation("platform_type must be one of Mobile, Console, PC, Cross-Platform, Web")
	}
	if !ValidDifficulty(in.DifficultyLevel) {
		return ErrValidation("difficulty_level must be one of Easy, Medium, Challenging")
	}
	if in.AverageUserRating < 0 || in.AverageUserRating > 5 {
		return ErrValidation("average_user_rating must be between 0 and 5")
	}
	if in.RatingCount < 0 {
		return ErrValidation("rating_count must not be negative")
	}
	return nil
}

// Apply copies the input payload onto a game record.
func (in *GameInput) Apply(g *Game) {
	g.Title = in.Title
	g.Description = in.Description
	g.Developer = in.Developer
	g.Publisher = in.Publisher
	g.ReleaseYear = in.ReleaseYear
	g.PrimaryGenre = in.PrimaryGenre
	g.Genres = in.Genres
	g.GameplayStyle = in.GameplayStyle
	g.AverageUserRating = in.AverageUserRating
	g.RatingCount = in.RatingCount
	g.MetaScore = in.MetaScore
	g.PopularityScore = in.PopularityScore
	g.ContentSuitability = in.ContentSuitability
	g.TargetSkills = in.TargetSkills
	g.DifficultyLevel = in.DifficultyLevel
	g.PlatformType = in.PlatformType
	g.Platform = in.Platform
	g.EmbedURL = in.EmbedURL
	g.ThumbnailURL = in.ThumbnailURL
}
