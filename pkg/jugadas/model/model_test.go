package model

import (
	"testing"
	"time"
)

func TestCombinations(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 1, 3: 3, 4: 6, 5: 10}
	for n, want := range cases {
		if got := Combinations(n); got != want {
			t.Errorf("Combinations(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected two NewID calls to differ")
	}
}

func TestMetadataFormattedTimestamp(t *testing.T) {
	ts := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	m := Metadata{Timestamp: ts}
	got := m.FormattedTimestamp()
	want := "2026-03-05 14:30:00"
	if got != want {
		t.Errorf("FormattedTimestamp() = %q, want %q", got, want)
	}
}
