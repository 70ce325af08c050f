package scan

import (
	"sort"
	"strings"

	"filmvault/internal/vision"
)

// rowOverlap is the fraction of the shorter fragment's height within which
// two fragments count as sharing a visual row.
const rowOverlap = 0.8

// Reorder sorts positioned fragments into human reading order (top row to
// bottom row, left to right within a row) and joins their texts with
// newlines. OCR engines often emit fragments in scan or confidence order,
// which scrambles multi-line titles.
func Reorder(fragments []vision.PositionedAnnotation) string {
	ordered := make([]vision.PositionedAnnotation, len(fragments))
	copy(ordered, fragments)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		rowThreshold := rowOverlap * min(a.Height, b.Height)
		yDiff := a.CenterY - b.CenterY
		if yDiff > rowThreshold || yDiff < -rowThreshold {
			return yDiff < 0
		}
		return a.CenterX < b.CenterX
	})

	lines := make([]string, 0, len(ordered))
	for _, fragment := range ordered {
		if text := strings.TrimSpace(fragment.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// AdoptReordered decides whether the reconstructed text should replace the
// engine's native full-page transcription. The reconstruction wins only when
// it is not degenerate (over 30% of the native length), its first line
// differs from the native first line, and it has at least as many lines.
// Otherwise the engine's own ordering was already fine and is kept.
func AdoptReordered(native, reordered string) string {
	if reordered == "" || float64(len(reordered)) <= float64(len(native))*0.3 {
		return native
	}
	nativeLines := strings.Split(native, "\n")
	reorderedLines := strings.Split(reordered, "\n")
	firstNative := strings.ToLower(strings.TrimSpace(nativeLines[0]))
	firstReordered := strings.ToLower(strings.TrimSpace(reorderedLines[0]))
	if firstNative != firstReordered && len(reorderedLines) >= len(nativeLines) {
		return reordered
	}
	return native
}
