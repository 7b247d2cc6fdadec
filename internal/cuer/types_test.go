package cuer

import (
	"encoding/json"
	"testing"
)

func TestPhaseRank(t *testing.T) {
	tests := []struct {
		phase string
		want  int
	}{
		{"I", 1},
		{"II", 2},
		{"III", 3},
		{"IV", 4},
		{"V", 5},
		{"VI", 6},
		{" vi ", 6},
		{"IV+2", 4},
		{"", unknownPhaseRank},
		{"unphased", unknownPhaseRank},
	}
	for _, tt := range tests {
		if got := PhaseRank(tt.phase); got != tt.want {
			t.Errorf("PhaseRank(%q) = %d, want %d", tt.phase, got, tt.want)
		}
	}
}

func TestCuesheetDecodesAPIKeys(t *testing.T) {
	var c Cuesheet
	payload := `{"id":"1","title":"Waltz Basics","rhythm":"Waltz","phase":"III","plusfigures":"+1","score":0.82}`
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.ID != "1" || c.Rhythm != "Waltz" || c.Score != 0.82 {
		t.Fatalf("decoded = %#v", c)
	}
	if c.PhaseLabel() != "III +1" {
		t.Fatalf("PhaseLabel = %q, want %q", c.PhaseLabel(), "III +1")
	}
	if ref := c.Ref(); ref.ID != "1" || ref.Title != "Waltz Basics" {
		t.Fatalf("Ref = %#v", ref)
	}
}

func TestPlaylistCloneAndContains(t *testing.T) {
	p := Playlist{ID: "7", Name: "Club night", Cuesheets: []CuesheetRef{{ID: "a", Title: "Axel F"}}}
	dup := p.Clone()
	dup.Cuesheets[0].Title = "changed"
	if p.Cuesheets[0].Title != "Axel F" {
		t.Fatalf("Clone shares backing array")
	}
	if !p.Contains("a") || p.Contains("b") {
		t.Fatalf("Contains mismatch for %#v", p)
	}
}
