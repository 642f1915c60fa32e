// Package sanitize strips markup from free-text input. Notes, comments and
// display names are stored as plain text; any HTML a client smuggles in is
// removed before persistence, not on render.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Service struct {
	policy *bluemonday.Policy
}

func NewService() *Service {
	return &Service{
		policy: bluemonday.StrictPolicy(),
	}
}

// PlainText removes all HTML elements and unescapes entities, returning the
// trimmed textual content.
func (s *Service) PlainText(input string) string {
	cleaned := s.policy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
