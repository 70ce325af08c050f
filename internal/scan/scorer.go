package scan

import (
	"regexp"
	"sort"
	"strings"

	"filmvault/internal/vision"
)

// ScoredCandidate is a surviving title guess with its heuristic score.
// Returned lists are sorted descending and contain only positive scores.
type ScoredCandidate struct {
	Text      string
	Score     int
	FontSize  float64
	YPosition float64
}

var (
	allDigitsRE  = regexp.MustCompile(`^\d+$`)
	noLettersRE  = regexp.MustCompile(`^[^a-zA-Z]*$`)
	titleCaseRE  = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*$`)
	capsSpacesRE = regexp.MustCompile(`^[A-Z\s]+$`)
	yearRE       = regexp.MustCompile(`^\d{4}$`)
	runtimeRE    = regexp.MustCompile(`^\d+h \d+m$`)
)

// ScoreCandidates scores every positioned fragment by typographic and
// positional heuristics to guess which one is the disc title. Format,
// rating, and metadata labels are rejected before scoring. The weights are
// hand-tuned against disc-cover conventions: a large title dominating the
// upper-middle of the cover, short all-caps stickers near the edges.
func ScoreCandidates(annotations []vision.PositionedAnnotation) []ScoredCandidate {
	if len(annotations) == 0 {
		return nil
	}

	// Vertical positions normalize against the spread of fragment tops, and
	// the font-size factor compares against the mean glyph height.
	minY, maxY := annotations[0].MinY, annotations[0].MinY
	var fontSizeSum float64
	for _, ann := range annotations {
		if ann.MinY < minY {
			minY = ann.MinY
		}
		if ann.MinY > maxY {
			maxY = ann.MinY
		}
		fontSizeSum += ann.FontSize
	}
	yRange := maxY - minY
	if yRange == 0 {
		yRange = 1
	}
	meanFontSize := fontSizeSum / float64(len(annotations))

	scored := make([]ScoredCandidate, 0, len(annotations))
	for _, ann := range annotations {
		text := strings.TrimSpace(ann.Text)
		if len(text) < 3 || allDigitsRE.MatchString(text) || noLettersRE.MatchString(text) {
			continue
		}
		if isExcludedLabel(strings.ToLower(text)) {
			continue
		}

		score := 0

		switch {
		case len(text) >= 8 && len(text) <= 50:
			score += 30
		case len(text) >= 5 && len(text) <= 60:
			score += 15
		}

		normalizedY := (ann.MinY - minY) / yRange
		switch {
		case normalizedY < 0.3:
			score += 25
		case normalizedY < 0.5:
			score += 20
		case normalizedY < 0.7:
			score += 10
		}

		if len(annotations) > 1 {
			switch {
			case ann.FontSize > meanFontSize*1.3:
				score += 25
			case ann.FontSize > meanFontSize*1.1:
				score += 15
			case ann.FontSize > meanFontSize:
				score += 5
			}
		}

		startsUpper := text[0] >= 'A' && text[0] <= 'Z'
		allUpper := text == strings.ToUpper(text)
		if startsUpper && !allUpper {
			score += 20
		} else if startsUpper {
			score += 5
		}

		wordCount := len(strings.Fields(text))
		if wordCount >= 1 && wordCount <= 5 {
			score += 15
		} else if wordCount <= 8 {
			score += 5
		}

		// Short all-caps strings are the classic format-sticker pattern.
		if len(text) < 15 && allUpper && capsSpacesRE.MatchString(text) {
			score -= 30
		}
		if digitCount(text) > len(text)/2 {
			score -= 20
		}
		if titleCaseRE.MatchString(text) {
			score += 10
		}

		if score > 0 {
			scored = append(scored, ScoredCandidate{
				Text:      text,
				Score:     score,
				FontSize:  ann.FontSize,
				YPosition: ann.MinY,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}

// SelectQuery picks the title guess from the scored list. When the winner is
// weak (score under 50) and other candidates scored over 20, the two longest
// of the top three are concatenated to recover titles that OCR split across
// a logo, capped at 60 characters.
func SelectQuery(candidates []ScoredCandidate) string {
	if len(candidates) == 0 {
		return ""
	}
	best := candidates[0]
	query := best.Text

	if best.Score < 50 && len(candidates) > 1 {
		top := candidates
		if len(top) > 3 {
			top = top[:3]
		}
		var texts []string
		for _, candidate := range top {
			if candidate.Score > 20 {
				texts = append(texts, candidate.Text)
			}
		}
		if len(texts) > 1 {
			sort.SliceStable(texts, func(i, j int) bool { return len(texts[i]) > len(texts[j]) })
			combined := strings.Join(texts[:2], " ")
			if len(combined) > 60 {
				combined = combined[:60]
			}
			if len(combined) > len(best.Text) {
				query = combined
			}
		}
	}
	return query
}

// BuildQuery resolves the search query from the scored candidates, falling
// back to full-text line filtering when selection produced nothing usable.
func BuildQuery(candidates []ScoredCandidate, fullText string) string {
	query := SelectQuery(candidates)
	if len(query) < 3 {
		query = FallbackQuery(fullText)
	}
	return query
}

// FallbackQuery derives a title guess from the full-page transcription when
// fragment scoring produced nothing usable. Lines matching the label sets,
// bare years, runtimes, and short all-caps stickers are discarded; the
// longest surviving line that looks like a mixed-case title wins.
func FallbackQuery(fullText string) string {
	var survivors []string
	for _, line := range strings.Split(fullText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || allDigitsRE.MatchString(line) || noLettersRE.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		if isExcludedLabel(lower) || yearRE.MatchString(lower) || runtimeRE.MatchString(lower) {
			continue
		}
		if len(line) < 4 {
			continue
		}
		if len(line) < 10 && line == strings.ToUpper(line) {
			continue
		}
		survivors = append(survivors, line)
	}

	sort.SliceStable(survivors, func(i, j int) bool { return len(survivors[i]) > len(survivors[j]) })
	for _, line := range survivors {
		startsUpper := line[0] >= 'A' && line[0] <= 'Z'
		if len(line) >= 8 && len(line) <= 60 && startsUpper && line != strings.ToUpper(line) {
			return line
		}
	}
	return ""
}

func digitCount(text string) int {
	count := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
