package cuer

import (
	"strings"
)

// Cuesheet mirrors a single search hit returned by /v2/search/{query}.
type Cuesheet struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Rhythm      string  `json:"rhythm"`
	Phase       string  `json:"phase"`
	PlusFigures string  `json:"plusfigures,omitempty"`
	Score       float64 `json:"score"`
}

// PhaseLabel joins the phase with its optional plus-figures modifier.
func (c Cuesheet) PhaseLabel() string {
	plus := strings.TrimSpace(c.PlusFigures)
	if plus == "" {
		return c.Phase
	}
	return c.Phase + " " + plus
}

// Ref returns the playlist member reference for the cuesheet.
func (c Cuesheet) Ref() CuesheetRef {
	return CuesheetRef{ID: c.ID, Title: c.Title}
}

// CuesheetRef is a playlist member.
type CuesheetRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Playlist mirrors /v2/playlists entries.
type Playlist struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Cuesheets []CuesheetRef `json:"cuesheets"`
}

// Clone returns a copy that shares no backing arrays with p.
func (p Playlist) Clone() Playlist {
	dup := p
	if p.Cuesheets != nil {
		dup.Cuesheets = make([]CuesheetRef, len(p.Cuesheets))
		copy(dup.Cuesheets, p.Cuesheets)
	}
	return dup
}

// Contains reports whether the playlist references the cuesheet id.
func (p Playlist) Contains(cuesheetID string) bool {
	for _, ref := range p.Cuesheets {
		if ref.ID == cuesheetID {
			return true
		}
	}
	return false
}

const unknownPhaseRank = 1 << 10

var romanValues = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
}

// PhaseRank converts a roman-numeral phase ("II", "iv", "VI+1") into its
// numeric tier. Phases that do not start with a roman numeral rank after all
// known tiers so they sort last.
func PhaseRank(phase string) int {
	upper := strings.ToUpper(strings.TrimSpace(phase))
	end := 0
	for end < len(upper) {
		if _, ok := romanValues[upper[end]]; !ok {
			break
		}
		end++
	}
	if end == 0 {
		return unknownPhaseRank
	}
	total := 0
	for i := 0; i < end; i++ {
		v := romanValues[upper[i]]
		if i+1 < end && v < romanValues[upper[i+1]] {
			total -= v
		} else {
			total += v
		}
	}
	if total <= 0 {
		return unknownPhaseRank
	}
	return total
}
