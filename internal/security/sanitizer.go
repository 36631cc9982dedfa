// Package security provides input sanitization for user-supplied catalog
// content. Admin payloads are display-only plain text downstream, so the
// policy strips markup entirely rather than allowlisting tags.
package security

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pixiplay/platform/internal/domain"
)

var (
	jsProtocolRe = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRe  = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// GameSanitizer cleans game payloads before persistence: script blocks and
// all remaining tags are stripped, javascript: URIs and inline event-handler
// patterns removed, and media URLs validated as well-formed http(s).
type GameSanitizer struct {
	policy *bluemonday.Policy
}

// NewGameSanitizer creates a sanitizer with the strict (strip-everything)
// HTML policy.
func NewGameSanitizer() *GameSanitizer {
	return &GameSanitizer{policy: bluemonday.StrictPolicy()}
}

// CleanText strips markup and executable fragments from a free-text field,
// returning plain trimmed text. Idempotent for already-clean input.
func (s *GameSanitizer) CleanText(input string) string {
	// StrictPolicy drops every tag, script/style contents included, and
	// entity-escapes what remains; unescape to store plain text.
	out := html.UnescapeString(s.policy.Sanitize(input))
	out = jsProtocolRe.ReplaceAllString(out, "")
	out = eventAttrRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// CleanList applies CleanText to each element.
func (s *GameSanitizer) CleanList(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, s.CleanText(item))
	}
	return out
}

// CleanURL returns the input if it parses as an absolute http or https URL
// after text sanitization, and empty string otherwise. A bad URL clears the
// field rather than failing the whole write.
func (s *GameSanitizer) CleanURL(raw string) string {
	cleaned := s.CleanText(raw)
	if cleaned == "" {
		return ""
	}
	u, err := url.Parse(cleaned)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return cleaned
}

// SanitizeGame cleans every free-text field of an admin game payload in
// place, list elements included.
func (s *GameSanitizer) SanitizeGame(in *domain.GameInput) {
	in.Title = s.CleanText(in.Title)
	in.Description = s.CleanText(in.Description)
	in.Developer = s.CleanText(in.Developer)
	in.Publisher = s.CleanText(in.Publisher)
	in.PrimaryGenre = s.CleanText(in.PrimaryGenre)
	in.GameplayStyle = s.CleanText(in.GameplayStyle)
	in.ContentSuitability = s.CleanText(in.ContentSuitability)
	in.DifficultyLevel = s.CleanText(in.DifficultyLevel)
	in.PlatformType = s.CleanText(in.PlatformType)
	in.Genres = s.CleanList(in.Genres)
	in.TargetSkills = s.CleanList(in.TargetSkills)
	in.Platform = s.CleanList(in.Platform)
	in.EmbedURL = s.CleanURL(in.EmbedURL)
	in.ThumbnailURL = s.CleanURL(in.ThumbnailURL)
}
