package scan

import (
	"strings"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mad-Max: Fury Road!!", "Mad-Max Fury Road"},
		{"THE MATRIX (1999) [Blu-Ray]", "THE MATRIX 1999 Blu-Ray"},
		{"  L'Avventura  ", "L'Avventura"},
		{"Spider . Man", "Spider Man"},
		{"***", ""},
	}
	for _, tc := range cases {
		if got := NormalizeQuery(tc.in); got != tc.want {
			t.Fatalf("NormalizeQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeQueryCapsLength(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	got := NormalizeQuery(long)
	if len(got) != maxQueryLength {
		t.Fatalf("len = %d, want %d", len(got), maxQueryLength)
	}
}
