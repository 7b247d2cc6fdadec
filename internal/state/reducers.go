package state

import (
	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

// ReduceSearch applies a to the search slice. Unknown kinds return s as is.
func ReduceSearch(s SearchState, a action.Action) SearchState {
	switch a := a.(type) {
	case action.CuesheetResult:
		next := s
		next.SearchResult = SortCuesheets(a.Cuesheets)
		return next
	case action.AddToListDialog:
		next := s
		next.DialogOpen = true
		next.Target = DialogTarget{ID: a.ID, Title: a.Title}
		return next
	case action.CloseDialog:
		next := s
		next.DialogOpen = false
		next.Target = DialogTarget{}
		return next
	default:
		return s
	}
}

// ReducePlaylists applies a to the playlist slice. Unknown kinds return s as is.
func ReducePlaylists(s PlaylistsState, a action.Action) PlaylistsState {
	switch a := a.(type) {
	case action.PlaylistResult:
		next := s
		next.PlaylistsResult = dedupe(a.Playlists)
		next.Refresh = false
		return next
	case action.PlaylistCreated:
		next := s
		next.PlaylistsResult = replaceByID(s.PlaylistsResult, a.Playlist)
		next.CreateForm = CreateForm{}
		return next
	case action.PlaylistCreateName:
		next := s
		next.CreateForm = CreateForm{Name: a.Name}
		return next
	case action.PlaylistUpdated:
		next := s
		next.PlaylistsResult = replaceByID(s.PlaylistsResult, a.Playlist)
		next.Refresh = true
		return next
	case action.PlaylistRemoved:
		next := s
		next.PlaylistsResult = removeByID(s.PlaylistsResult, a.Playlist.ID)
		next.Refresh = true
		return next
	default:
		return s
	}
}

// replaceByID puts p in place of the first entry sharing its id, or appends
// it. Later entries with an id already kept are dropped so the result is
// id-unique whatever the input held. The input slice is not modified.
func replaceByID(lists []cuer.Playlist, p cuer.Playlist) []cuer.Playlist {
	out := make([]cuer.Playlist, 0, len(lists)+1)
	seen := make(map[string]struct{}, len(lists)+1)
	for _, existing := range lists {
		if _, dup := seen[existing.ID]; dup {
			continue
		}
		seen[existing.ID] = struct{}{}
		if existing.ID == p.ID {
			out = append(out, p.Clone())
			continue
		}
		out = append(out, existing)
	}
	if _, ok := seen[p.ID]; !ok {
		out = append(out, p.Clone())
	}
	return out
}

func removeByID(lists []cuer.Playlist, id string) []cuer.Playlist {
	out := make([]cuer.Playlist, 0, len(lists))
	seen := make(map[string]struct{}, len(lists))
	for _, existing := range lists {
		if _, dup := seen[existing.ID]; dup || existing.ID == id {
			continue
		}
		seen[existing.ID] = struct{}{}
		out = append(out, existing)
	}
	return out
}

// dedupe keeps the last occurrence of each id, in first-seen order.
func dedupe(lists []cuer.Playlist) []cuer.Playlist {
	out := make([]cuer.Playlist, 0, len(lists))
	index := make(map[string]int, len(lists))
	for _, p := range lists {
		if i, ok := index[p.ID]; ok {
			out[i] = p.Clone()
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p.Clone())
	}
	return out
}
