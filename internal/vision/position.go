package vision

import "strings"

// PositionedAnnotation is a fragment annotation with computed scalar
// geometry. FontSize is approximated by the glyph height.
type PositionedAnnotation struct {
	Text     string
	MinX     float64
	MaxX     float64
	MinY     float64
	MaxY     float64
	CenterX  float64
	CenterY  float64
	Width    float64
	Height   float64
	FontSize float64
}

// Position derives scalar geometry from a fragment's bounding polygon.
// Returns false for fragments with no valid positive coordinates or no
// visible text; those are dropped, not scored.
func Position(ann TextAnnotation) (PositionedAnnotation, bool) {
	text := strings.TrimSpace(ann.Description)
	if text == "" {
		return PositionedAnnotation{}, false
	}

	var xs, ys []float64
	for _, v := range ann.BoundingPoly.Vertices {
		if v.X > 0 {
			xs = append(xs, float64(v.X))
		}
		if v.Y > 0 {
			ys = append(ys, float64(v.Y))
		}
	}
	if len(xs) == 0 || len(ys) == 0 {
		return PositionedAnnotation{}, false
	}

	pos := PositionedAnnotation{
		Text: text,
		MinX: xs[0], MaxX: xs[0],
		MinY: ys[0], MaxY: ys[0],
	}
	for _, x := range xs[1:] {
		if x < pos.MinX {
			pos.MinX = x
		}
		if x > pos.MaxX {
			pos.MaxX = x
		}
	}
	for _, y := range ys[1:] {
		if y < pos.MinY {
			pos.MinY = y
		}
		if y > pos.MaxY {
			pos.MaxY = y
		}
	}
	pos.CenterX = (pos.MinX + pos.MaxX) / 2
	pos.CenterY = (pos.MinY + pos.MaxY) / 2
	pos.Width = pos.MaxX - pos.MinX
	pos.Height = pos.MaxY - pos.MinY
	pos.FontSize = pos.Height
	return pos, true
}

// PositionAll derives geometry for every fragment, dropping invalid ones.
func PositionAll(fragments []TextAnnotation) []PositionedAnnotation {
	positioned := make([]PositionedAnnotation, 0, len(fragments))
	for _, fragment := range fragments {
		if pos, ok := Position(fragment); ok {
			positioned = append(positioned, pos)
		}
	}
	return positioned
}
