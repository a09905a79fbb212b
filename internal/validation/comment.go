package validation

import (
	"strings"

	"wayfarer-backend/internal/apperr"
)

const labelComment = "Please enter a valid comment"

// Comment validates a comment body: required, non-blank, within maxLen runes.
func Comment(body string, maxLen int) error {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return apperr.Validation(labelComment)
	}
	if maxLen > 0 && len([]rune(body)) > maxLen {
		return apperr.Validation(labelComment)
	}
	return nil
}
