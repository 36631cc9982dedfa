package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() GameInput {
	return GameInput{
		Title:           "Puzzle Planet",
		PlatformType:    PlatformMobile,
		DifficultyLevel: DifficultyEasy,
	}
}

func TestGameInput_NormalizeFillsDefaults(t *testing.T) {
	in := GameInput{Title: "X", PlatformType: PlatformWeb}
	in.Normalize()

	assert.Equal(t, "No description available.", in.Description)
	assert.Equal(t, "Everyone", in.ContentSuitability)
	assert.Equal(t, DifficultyEasy, in.DifficultyLevel)
	assert.NotNil(t, in.Genres)
	assert.NotNil(t, in.TargetSkills)
	assert.NotNil(t, in.Platform)
}

func TestGameInput_NormalizeKeepsProvidedValues(t *testing.T) {
	in := GameInput{
		Title:              "X",
		Description:        "custom",
		ContentSuitability: "Everyone 10+",
		DifficultyLevel:    DifficultyChallenging,
		Genres:             []string{"Puzzle"},
	}
	in.Normalize()

	assert.Equal(t, "custom", in.Description)
	assert.Equal(t, "Everyone 10+", in.ContentSuitability)
	assert.Equal(t, DifficultyChallenging, in.DifficultyLevel)
	assert.Equal(t, []string{"Puzzle"}, in.Genres)
}

func TestGameInput_Validate(t *testing.T) {
	in := validInput()
	assert.NoError(t, in.Validate())

	in = validInput()
	in.Title = ""
	assert.Error(t, in.Validate())

	in = validInput()
	in.PlatformType = "Arcade"
	assert.Error(t, in.Validate())

	in = validInput()
	in.DifficultyLevel = "Impossible"
	assert.Error(t, in.Validate())

	in = validInput()
	in.AverageUserRating = 5.1
	assert.Error(t, in.Validate())

	in = validInput()
	in.AverageUserRating = -0.1
	assert.Error(t, in.Validate())

	in = validInput()
	in.RatingCount = -1
	assert.Error(t, in.Validate())
}

func TestGameInput_ValidateReturnsAppError(t *testing.T) {
	in := validInput()
	in.Title = ""
	err := in.Validate()

	appErr, ok := err.(*AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGameInput_Apply(t *testing.T) {
	in := validInput()
	in.Genres = []string{"Puzzle", "Adventure"}
	in.AverageUserRating = 4.5

	g := &Game{}
	in.Apply(g)

	assert.Equal(t, "Puzzle Planet", g.Title)
	assert.Equal(t, PlatformMobile, g.PlatformType)
	assert.Equal(t, []string{"Puzzle", "Adventure"}, g.Genres)
	assert.Equal(t, 4.5, g.AverageUserRating)
}

func TestUser_PublicOmitsPasswordHash(t *testing.T) {
	u := &User{Name: "Pat", Email: "pat@example.com", PasswordHash: "$2a$12$x", Role: RoleParent}
	pub := u.Public()

	assert.Equal(t, "Pat", pub.Name)
	assert.Equal(t, "pat@example.com", pub.Email)
	assert.Equal(t, RoleParent, pub.Role)
}
