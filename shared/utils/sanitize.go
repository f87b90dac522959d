package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizer cleans user supplied text before it is stored.
type ContentSanitizer interface {
	Sanitize(s string) string
}

type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer strips every html tag, leaving plain text. Entities the
// policy escapes are decoded again since content is stored and served as raw
// text, not html.
func NewHTMLSanitizer() ContentSanitizer {
	return &htmlSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *htmlSanitizer) Sanitize(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}

type noopSanitizer struct{}

func (noopSanitizer) Sanitize(s string) string { return s }

// NoopSanitizer keeps content as sent.
func NoopSanitizer() ContentSanitizer {
	return noopSanitizer{}
}
