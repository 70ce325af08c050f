package textutil

import (
	"reflect"
	"testing"
)

func TestTokenizeFiltersShortTokens(t *testing.T) {
	got := Tokenize("The Lord of the Rings")
	want := []string{"the", "lord", "the", "rings"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize("  a an  "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  Mad   Max\tFury  Road "); got != "Mad Max Fury Road" {
		t.Fatalf("CollapseWhitespace = %q", got)
	}
}
