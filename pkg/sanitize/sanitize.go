package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy drops every HTML element, including the contents of
// script and style blocks.
var policy = bluemonday.StrictPolicy()

// Clean strips HTML markup and script content from free-text input.
func Clean(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// CleanPtr cleans the pointed-to string in place, leaving nil untouched.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := Clean(*s)
	return &cleaned
}
