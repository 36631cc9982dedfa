package security

import (
	"testing"

	"github.com/pixiplay/platform/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCleanText_StripsScriptBlocks(t *testing.T) {
	s := NewGameSanitizer()

	out := s.CleanText(`Fun game<script>alert("xss")</script> for kids`)
	assert.Equal(t, "Fun game for kids", out)
}

func TestCleanText_StripsTagsKeepsText(t *testing.T) {
	s := NewGameSanitizer()

	assert.Equal(t, "bold title", s.CleanText("<b>bold</b> title"))
	assert.Equal(t, "link", s.CleanText(`<a href="https://evil.example">link</a>`))
}

func TestCleanText_RemovesJavascriptProtocol(t *testing.T) {
	s := NewGameSanitizer()

	out := s.CleanText("JAVASCRIPT:alert(1)")
	assert.NotContains(t, out, "JAVASCRIPT:")
	assert.NotContains(t, out, "javascript:")
}

func TestCleanText_RemovesEventHandlerPatterns(t *testing.T) {
	s := NewGameSanitizer()

	out := s.CleanText(`img onerror=alert(1) onload = run()`)
	assert.NotContains(t, out, "onerror")
	assert.NotContains(t, out, "onload")
}

func TestCleanText_IdempotentForCleanInput(t *testing.T) {
	s := NewGameSanitizer()

	clean := "A perfectly normal description, 100% safe."
	assert.Equal(t, clean, s.CleanText(clean))
	assert.Equal(t, clean, s.CleanText(s.CleanText(clean)))
}

func TestCleanURL(t *testing.T) {
	s := NewGameSanitizer()

	assert.Equal(t, "https://cdn.example/a.png", s.CleanURL("https://cdn.example/a.png"))
	assert.Equal(t, "http://cdn.example/a.png", s.CleanURL("http://cdn.example/a.png"))

	assert.Empty(t, s.CleanURL("javascript:alert(1)"))
	assert.Empty(t, s.CleanURL("ftp://files.example/a.png"))
	assert.Empty(t, s.CleanURL("not a url at all !!"))
	assert.Empty(t, s.CleanURL(""))
}

func TestSanitizeGame_CleansEveryTextField(t *testing.T) {
	s := NewGameSanitizer()

	in := &domain.GameInput{
		Title:        `Kart<script>steal()</script> Critters`,
		Description:  "<i>fast</i> and fun",
		Developer:    "Turbo<script></script> Tails",
		Genres:       []string{"<b>Racing</b>", "Party"},
		TargetSkills: []string{"javascript:hack()"},
		EmbedURL:     "javascript:alert(1)",
		ThumbnailURL: "https://cdn.example/kart.png",
	}
	s.SanitizeGame(in)

	assert.Equal(t, "Kart Critters", in.Title)
	assert.Equal(t, "fast and fun", in.Description)
	assert.Equal(t, "Turbo Tails", in.Developer)
	assert.Equal(t, []string{"Racing", "Party"}, in.Genres)
	assert.NotContains(t, in.TargetSkills[0], "javascript:")
	assert.Empty(t, in.EmbedURL)
	assert.Equal(t, "https://cdn.example/kart.png", in.ThumbnailURL)
}
