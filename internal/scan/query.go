package scan

import (
	"regexp"
	"strings"
)

const maxQueryLength = 60

var disallowedQueryCharsRE = regexp.MustCompile(`[^\w\s'-]`)

// NormalizeQuery cleans a title guess into a search string: everything but
// word characters, whitespace, apostrophes, and hyphens becomes a space,
// whitespace runs collapse to one space, and the result is trimmed and
// capped at 60 characters.
func NormalizeQuery(text string) string {
	cleaned := disallowedQueryCharsRE.ReplaceAllString(text, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if len(cleaned) > maxQueryLength {
		cleaned = cleaned[:maxQueryLength]
	}
	return cleaned
}
