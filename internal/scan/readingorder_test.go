package scan

import (
	"testing"

	"filmvault/internal/vision"
)

func positioned(text string, centerX, centerY, height float64) vision.PositionedAnnotation {
	return vision.PositionedAnnotation{
		Text:    text,
		CenterX: centerX,
		CenterY: centerY,
		Height:  height,
	}
}

func TestReorderRowsThenColumns(t *testing.T) {
	fragments := []vision.PositionedAnnotation{
		positioned("KNIGHT", 200, 100, 30),
		positioned("THE", 50, 40, 30),
		positioned("DARK", 100, 100, 30),
	}
	got := Reorder(fragments)
	want := "THE\nDARK\nKNIGHT"
	if got != want {
		t.Fatalf("Reorder = %q, want %q", got, want)
	}
}

func TestReorderSameRowSortsByXRegardlessOfInputOrder(t *testing.T) {
	left := positioned("left", 10, 100, 20)
	right := positioned("right", 300, 110, 20)

	if got := Reorder([]vision.PositionedAnnotation{right, left}); got != "left\nright" {
		t.Fatalf("Reorder = %q, want left first", got)
	}
	if got := Reorder([]vision.PositionedAnnotation{left, right}); got != "left\nright" {
		t.Fatalf("Reorder = %q, want left first", got)
	}
}

func TestReorderDropsBlankFragments(t *testing.T) {
	fragments := []vision.PositionedAnnotation{
		positioned("A", 10, 10, 10),
		positioned("   ", 20, 10, 10),
		positioned("B", 30, 10, 10),
	}
	if got := Reorder(fragments); got != "A\nB" {
		t.Fatalf("Reorder = %q, want blanks dropped", got)
	}
}

func TestAdoptReorderedPrefersReconstruction(t *testing.T) {
	native := "BLU-RAY\nTHE DARK KNIGHT"
	reordered := "THE DARK KNIGHT\nBLU-RAY"
	if got := AdoptReordered(native, reordered); got != reordered {
		t.Fatalf("AdoptReordered = %q, want reconstruction adopted", got)
	}
}

func TestAdoptReorderedKeepsNative(t *testing.T) {
	native := "THE DARK KNIGHT\nBLU-RAY\nWARNER"

	// Degenerate reconstruction: far shorter than the native text.
	if got := AdoptReordered(native, "OK"); got != native {
		t.Fatalf("short reconstruction adopted: %q", got)
	}
	// Same first line means the native order was already right.
	if got := AdoptReordered(native, "THE DARK KNIGHT\nWARNER\nBLU-RAY"); got != native {
		t.Fatalf("same-first-line reconstruction adopted: %q", got)
	}
	// Fewer lines than the native text.
	if got := AdoptReordered(native, "BLU-RAY\nTHE DARK KNIGHT WARNER"); got != native {
		t.Fatalf("line-losing reconstruction adopted: %q", got)
	}
	if got := AdoptReordered(native, ""); got != native {
		t.Fatalf("empty reconstruction adopted: %q", got)
	}
}
