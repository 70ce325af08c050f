package scan

import "strings"

// Label sets for text fragments that are never titles. Matching is
// case-insensitive substring, so "BLU-RAY 4K" trips on both entries.
var (
	formatLabels = []string{
		"4k", "ultra hd", "uhd", "blu-ray", "blu ray", "dvd", "special edition",
		"collector's edition", "director's cut", "extended cut", "unrated",
		"digital copy", "digital hd", "hd", "hdr", "dolby vision", "dolby atmos",
		"dts", "surround sound", "widescreen", "full screen", "pan & scan",
	}

	ratingLabels = []string{"rated", "pg-", "pg13", "r-rated", "nc-17", "g-rated", "tv-"}

	metadataWords = []string{
		"director", "produced", "starring", "runtime", "minutes", "year",
		"copyright", "©", "tm",
	}
)

// isExcludedLabel reports whether the lowercased text matches any of the
// format, rating, or metadata sets.
func isExcludedLabel(lower string) bool {
	for _, label := range formatLabels {
		if strings.Contains(lower, label) {
			return true
		}
	}
	for _, label := range ratingLabels {
		if strings.Contains(lower, label) {
			return true
		}
	}
	for _, word := range metadataWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
