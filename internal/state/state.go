package state

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/cuer/internal/cuer"
)

// DialogTarget is the cuesheet the "add to playlist" dialog acts on.
type DialogTarget struct {
	ID    string
	Title string
}

// SearchState is the cuesheet search slice.
type SearchState struct {
	SearchResult []cuer.Cuesheet
	DialogOpen   bool
	Target       DialogTarget
}

// CreateForm is the draft of the "create playlist" form.
type CreateForm struct {
	Name string
}

// PlaylistsState is the playlist slice. Refresh marks PlaylistsResult as
// stale until the next successful list fetch.
type PlaylistsState struct {
	PlaylistsResult []cuer.Playlist
	Refresh         bool
	CreateForm      CreateForm
}

// InitialSearch returns the search slice at application start.
func InitialSearch() SearchState {
	return SearchState{SearchResult: []cuer.Cuesheet{}}
}

// InitialPlaylists returns the playlist slice at application start.
func InitialPlaylists() PlaylistsState {
	return PlaylistsState{PlaylistsResult: []cuer.Playlist{}, Refresh: true}
}

// Clone returns a copy sharing no slices with s.
func (s SearchState) Clone() SearchState {
	dup := s
	dup.SearchResult = slices.Clone(s.SearchResult)
	return dup
}

// Clone returns a copy sharing no slices with s.
func (s PlaylistsState) Clone() PlaylistsState {
	dup := s
	if s.PlaylistsResult != nil {
		dup.PlaylistsResult = make([]cuer.Playlist, len(s.PlaylistsResult))
		for i, p := range s.PlaylistsResult {
			dup.PlaylistsResult[i] = p.Clone()
		}
	}
	return dup
}

// PlaylistByID finds a playlist in the fetched collection.
func (s PlaylistsState) PlaylistByID(id string) (cuer.Playlist, bool) {
	for _, p := range s.PlaylistsResult {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return cuer.Playlist{}, false
}

// SortCuesheets returns hits ordered by score descending, then phase tier
// ascending, then title ascending. The input is not modified.
func SortCuesheets(hits []cuer.Cuesheet) []cuer.Cuesheet {
	sorted := slices.Clone(hits)
	if sorted == nil {
		sorted = []cuer.Cuesheet{}
	}
	slices.SortStableFunc(sorted, compareCuesheets)
	return sorted
}

func compareCuesheets(a, b cuer.Cuesheet) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(cuer.PhaseRank(a.Phase), cuer.PhaseRank(b.Phase)); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}
