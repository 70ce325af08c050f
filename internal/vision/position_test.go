package vision

import "testing"

func quad(x1, y1, x2, y2 int) BoundingPoly {
	return BoundingPoly{Vertices: []Vertex{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2},
	}}
}

func TestPositionComputesGeometry(t *testing.T) {
	pos, ok := Position(TextAnnotation{Description: "GLADIATOR", BoundingPoly: quad(40, 100, 240, 160)})
	if !ok {
		t.Fatal("expected annotation to position")
	}
	if pos.MinX != 40 || pos.MaxX != 240 || pos.MinY != 100 || pos.MaxY != 160 {
		t.Fatalf("unexpected bounds: %+v", pos)
	}
	if pos.CenterX != 140 || pos.CenterY != 130 {
		t.Fatalf("unexpected center: %+v", pos)
	}
	if pos.Width != 200 || pos.Height != 60 || pos.FontSize != 60 {
		t.Fatalf("unexpected size: %+v", pos)
	}
}

func TestPositionIgnoresOmittedCoordinates(t *testing.T) {
	// The engine omits zero coordinates, so a corner at the image origin
	// decodes as (0,0) and must not drag the bounds to zero.
	poly := BoundingPoly{Vertices: []Vertex{{X: 0, Y: 0}, {X: 120, Y: 0}, {X: 120, Y: 30}, {X: 0, Y: 30}}}
	pos, ok := Position(TextAnnotation{Description: "INCEPTION", BoundingPoly: poly})
	if !ok {
		t.Fatal("expected annotation to position")
	}
	if pos.MinX != 120 || pos.MinY != 30 {
		t.Fatalf("zero coordinates should be dropped: %+v", pos)
	}
}

func TestPositionRejectsDegenerateAnnotations(t *testing.T) {
	if _, ok := Position(TextAnnotation{Description: "   ", BoundingPoly: quad(1, 1, 2, 2)}); ok {
		t.Fatal("blank text should not position")
	}
	if _, ok := Position(TextAnnotation{Description: "X"}); ok {
		t.Fatal("empty polygon should not position")
	}
	onlyZero := BoundingPoly{Vertices: []Vertex{{X: 0, Y: 0}}}
	if _, ok := Position(TextAnnotation{Description: "X", BoundingPoly: onlyZero}); ok {
		t.Fatal("all-zero polygon should not position")
	}
}

func TestPositionAllDropsInvalid(t *testing.T) {
	fragments := []TextAnnotation{
		{Description: "THE", BoundingPoly: quad(10, 10, 50, 40)},
		{Description: "", BoundingPoly: quad(60, 10, 90, 40)},
		{Description: "MATRIX", BoundingPoly: quad(100, 10, 200, 40)},
	}
	positioned := PositionAll(fragments)
	if len(positioned) != 2 {
		t.Fatalf("expected 2 positioned fragments, got %d", len(positioned))
	}
	if positioned[0].Text != "THE" || positioned[1].Text != "MATRIX" {
		t.Fatalf("unexpected ordering: %+v", positioned)
	}
}
