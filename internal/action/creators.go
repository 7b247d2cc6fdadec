package action

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	originCuesheetSearch = "cuesheet.search"
	originPlaylists      = "playlists"
	originPlaylistEdit   = "playlists.edit"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// SearchCuesheets builds the free-text search intent. Tagged filters such as
// "phase:IV" or "rhythm:Waltz" are passed through for the server to interpret.
func SearchCuesheets(query string, err error) Intent {
	return newIntent(originCuesheetSearch, err, Target{
		Success: KindCuesheetResult,
		URL:     "/v2/search/" + url.PathEscape(strings.TrimSpace(query)),
		Method:  http.MethodGet,
	})
}

// SearchByPhase searches for cuesheets of a phase tier.
func SearchByPhase(phase string, err error) Intent {
	return SearchCuesheets("phase:"+strings.ToUpper(strings.TrimSpace(phase)), err)
}

// SearchByRhythm searches for cuesheets of a rhythm.
func SearchByRhythm(rhythm string, err error) Intent {
	return SearchCuesheets("rhythm:"+strings.TrimSpace(rhythm), err)
}

// ListPlaylists fetches the playlist collection.
func ListPlaylists(err error) Intent {
	return newIntent(originPlaylists, err, Target{
		Success: KindPlaylistResult,
		URL:     "/v2/playlists",
		Method:  http.MethodGet,
	})
}

// CreatePlaylist creates a playlist with the given name.
func CreatePlaylist(name string, err error) Intent {
	body, _ := json.Marshal(struct {
		Name string `json:"name"`
	}{Name: strings.TrimSpace(name)})
	return newIntent(originPlaylists, err, Target{
		Success: KindPlaylistCreated,
		URL:     "/v2/playlists",
		Method:  http.MethodPut,
		Body:    body,
		Headers: jsonHeaders,
	})
}

// DeletePlaylist deletes a playlist by id.
func DeletePlaylist(id string, err error) Intent {
	in := newIntent(originPlaylists, err, Target{
		Success: KindPlaylistRemoved,
		URL:     "/v2/playlists/" + url.PathEscape(id),
		Method:  http.MethodDelete,
	})
	in.PlaylistID = id
	return in
}

// AddToPlaylist adds a cuesheet to a playlist.
func AddToPlaylist(id, cuesheetID string, err error) Intent {
	in := newIntent(originPlaylistEdit, err, Target{
		Success: KindPlaylistUpdated,
		URL:     membershipURL(id, cuesheetID),
		Method:  http.MethodPut,
	})
	in.PlaylistID = id
	return in
}

// RemoveFromPlaylist removes a cuesheet from a playlist.
func RemoveFromPlaylist(id, cuesheetID string, err error) Intent {
	in := newIntent(originPlaylistEdit, err, Target{
		Success: KindPlaylistUpdated,
		URL:     membershipURL(id, cuesheetID),
		Method:  http.MethodDelete,
	})
	in.PlaylistID = id
	return in
}

// CreatePlaylistName echoes the create-form input into state.
func CreatePlaylistName(name string) PlaylistCreateName {
	return PlaylistCreateName{Name: name}
}

// OpenAddToListDialog opens the "add to playlist" dialog for a cuesheet.
func OpenAddToListDialog(id, title string) AddToListDialog {
	return AddToListDialog{ID: id, Title: title}
}

// CloseAddToListDialog closes the "add to playlist" dialog.
func CloseAddToListDialog() CloseDialog {
	return CloseDialog{}
}

func membershipURL(id, cuesheetID string) string {
	return "/v2/playlists/" + url.PathEscape(id) + "/cuesheet/" + url.PathEscape(cuesheetID)
}

func newIntent(origin string, err error, target Target) Intent {
	return Intent{
		ID:     uuid.NewString(),
		Target: target,
		Failed: err != nil,
		Origin: origin,
	}
}
