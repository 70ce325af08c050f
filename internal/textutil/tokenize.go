package textutil

import "strings"

// minTokenLength filters out articles and stray OCR fragments.
const minTokenLength = 3

// Tokenize splits text into lowercase whitespace-delimited tokens, filtering
// tokens shorter than 3 characters.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		if len(token) < minTokenLength {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// CollapseWhitespace reduces runs of whitespace to single spaces and trims
// the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
