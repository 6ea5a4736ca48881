// Package slugify derives URL-safe slugs from titles and names.
// Slugs double as natural keys, so the derivation must stay deterministic.
package slugify

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	invalid    = regexp.MustCompile(`[^\w-]+`)
	dashes     = regexp.MustCompile(`--+`)
)

// Slugify lowercases the text, turns whitespace runs into single hyphens,
// strips everything outside [A-Za-z0-9_-] and collapses the rest.
// It is idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = whitespace.ReplaceAllString(s, "-")
	s = invalid.ReplaceAllString(s, "")
	s = dashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
