package scan

import (
	"strings"
	"testing"

	"filmvault/internal/vision"
)

func candidate(text string, minY, fontSize float64) vision.PositionedAnnotation {
	return vision.PositionedAnnotation{Text: text, MinY: minY, FontSize: fontSize}
}

func TestScoreCandidatesRanksTitleFirst(t *testing.T) {
	annotations := []vision.PositionedAnnotation{
		candidate("The Dark Knight", 100, 80),
		candidate("ACTION", 500, 20),
		candidate("2008", 520, 18),
	}
	scored := ScoreCandidates(annotations)
	if len(scored) != 2 {
		t.Fatalf("expected 2 survivors, got %d: %+v", len(scored), scored)
	}
	if scored[0].Text != "The Dark Knight" {
		t.Fatalf("expected title ranked first, got %q", scored[0].Text)
	}
	if scored[0].Score != 125 {
		t.Fatalf("title score = %d, want 125", scored[0].Score)
	}
	if scored[1].Text != "ACTION" || scored[1].Score != 5 {
		t.Fatalf("unexpected runner-up: %+v", scored[1])
	}
}

func TestScoreCandidatesRejectsLabelSets(t *testing.T) {
	labels := make([]string, 0, len(formatLabels)+len(ratingLabels)+len(metadataWords))
	labels = append(labels, formatLabels...)
	labels = append(labels, ratingLabels...)
	labels = append(labels, metadataWords...)

	for _, label := range labels {
		annotations := []vision.PositionedAnnotation{
			candidate("embedded "+strings.ToUpper(label)+" text", 10, 50),
		}
		if scored := ScoreCandidates(annotations); len(scored) != 0 {
			t.Fatalf("label %q survived scoring: %+v", label, scored)
		}
	}
}

func TestScoreCandidatesRejectsDegenerateText(t *testing.T) {
	annotations := []vision.PositionedAnnotation{
		candidate("ab", 10, 50),
		candidate("20192", 20, 50),
		candidate("!!! ???", 30, 50),
	}
	if scored := ScoreCandidates(annotations); len(scored) != 0 {
		t.Fatalf("degenerate fragments survived: %+v", scored)
	}
}

func TestScoreCandidatesAllScoresPositive(t *testing.T) {
	annotations := []vision.PositionedAnnotation{
		candidate("The Shawshank Redemption", 50, 90),
		candidate("WB", 900, 15),
		candidate("FBI WARNING", 880, 12),
		candidate("Morgan Freeman", 300, 30),
	}
	for _, scored := range ScoreCandidates(annotations) {
		if scored.Score <= 0 {
			t.Fatalf("non-positive score in results: %+v", scored)
		}
	}
}

func TestScoreCandidatesFormatStickerNeverOutranksTitle(t *testing.T) {
	annotations := []vision.PositionedAnnotation{
		candidate("THE DARK KNIGHT", 50, 90),
		candidate("BLU-RAY 4K ULTRA HD", 900, 20),
	}
	scored := ScoreCandidates(annotations)
	if len(scored) != 1 {
		t.Fatalf("expected the format sticker rejected outright, got %+v", scored)
	}
	if scored[0].Text != "THE DARK KNIGHT" || scored[0].Score != 100 {
		t.Fatalf("unexpected winner: %+v", scored[0])
	}
}

func TestSelectQueryUsesStrongWinnerDirectly(t *testing.T) {
	candidates := []ScoredCandidate{
		{Text: "Interstellar", Score: 95},
		{Text: "Christopher", Score: 40},
	}
	if got := SelectQuery(candidates); got != "Interstellar" {
		t.Fatalf("SelectQuery = %q, want the strong winner", got)
	}
}

func TestSelectQueryCombinesSplitTitle(t *testing.T) {
	candidates := []ScoredCandidate{
		{Text: "Fury Road", Score: 45},
		{Text: "Mad Max", Score: 40},
		{Text: "Trailer", Score: 25},
		{Text: "Bonus Disc Extra", Score: 22},
	}
	if got := SelectQuery(candidates); got != "Fury Road Mad Max" {
		t.Fatalf("SelectQuery = %q, want the two longest top candidates combined", got)
	}
}

func TestSelectQueryKeepsWinnerWhenCombinationIsShorter(t *testing.T) {
	candidates := []ScoredCandidate{
		{Text: "A Very Long Standalone Movie Title", Score: 45},
		{Text: "Wide", Score: 25},
	}
	if got := SelectQuery(candidates); got != "A Very Long Standalone Movie Title" {
		t.Fatalf("SelectQuery = %q, want the winner kept", got)
	}
}

func TestFallbackQueryPicksMixedCaseLine(t *testing.T) {
	fullText := "BLU-RAY\n2008\n2h 32m\nThe Dark Knight Returns\nLANGUAGES ENGLISH FRENCH\nWB"
	if got := FallbackQuery(fullText); got != "The Dark Knight Returns" {
		t.Fatalf("FallbackQuery = %q", got)
	}
}

func TestFallbackQueryEmptyWhenNothingPlausible(t *testing.T) {
	fullText := "DVD\n2019\nDTS\n1h 58m\nPG-13"
	if got := FallbackQuery(fullText); got != "" {
		t.Fatalf("FallbackQuery = %q, want empty", got)
	}
}

func TestBuildQueryFallsBackToFullText(t *testing.T) {
	fullText := "BLU-RAY\nInterstellar\n2014"
	if got := BuildQuery(nil, fullText); got != "Interstellar" {
		t.Fatalf("BuildQuery = %q, want full-text fallback", got)
	}
	candidates := []ScoredCandidate{{Text: "The Dark Knight", Score: 125}}
	if got := BuildQuery(candidates, fullText); got != "The Dark Knight" {
		t.Fatalf("BuildQuery = %q, want scored winner", got)
	}
}
