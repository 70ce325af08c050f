package scan

import (
	"strings"

	"filmvault/internal/textutil"
)

// autoMatchThreshold is the minimum token overlap fraction for auto-select;
// the boundary is inclusive.
const autoMatchThreshold = 0.5

// AutoMatch decides whether the top search result matches the query closely
// enough to accept without user confirmation. Either string containing the
// other is an immediate match; otherwise tokens of three or more characters
// are compared, counting a query token as matched when it contains or is
// contained by some title token.
func AutoMatch(query, firstTitle string) bool {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	titleLower := strings.ToLower(strings.TrimSpace(firstTitle))
	if queryLower == "" || titleLower == "" {
		return false
	}
	if strings.Contains(titleLower, queryLower) || strings.Contains(queryLower, titleLower) {
		return true
	}

	queryTokens := textutil.Tokenize(queryLower)
	titleTokens := textutil.Tokenize(titleLower)

	matching := 0
	for _, word := range queryTokens {
		for _, titleWord := range titleTokens {
			if strings.Contains(titleWord, word) || strings.Contains(word, titleWord) {
				matching++
				break
			}
		}
	}

	matchScore := float64(matching) / float64(max(len(queryTokens), 1))
	return matchScore >= autoMatchThreshold
}
