package action

import (
	"fmt"

	"github.com/five82/cuer/internal/cuer"
)

// Kind tags every action. The set is closed: only this package defines
// types that satisfy Action.
type Kind int

const (
	KindAPI Kind = iota
	KindCuesheetResult
	KindCuesheetAddToListDialog
	KindCuesheetCloseDialog
	KindPlaylistResult
	KindPlaylistCreated
	KindPlaylistCreateName
	KindPlaylistRemoved
	KindPlaylistUpdated
	KindFailure
)

var kindNames = [...]string{
	KindAPI:                     "API",
	KindCuesheetResult:          "CUESHEET_RESULT",
	KindCuesheetAddToListDialog: "CUESHEET_ADD_TO_LIST_DIALOG",
	KindCuesheetCloseDialog:     "CUESHEET_CLOSE_DIALOG",
	KindPlaylistResult:          "PLAYLIST_RESULT",
	KindPlaylistCreated:         "PLAYLIST_CREATED",
	KindPlaylistCreateName:      "PLAYLIST_CREATE_NAME",
	KindPlaylistRemoved:         "PLAYLIST_REMOVED",
	KindPlaylistUpdated:         "PLAYLIST_UPDATED",
	KindFailure:                 "FAILURE",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Action is a dispatched state transition or side-effect request.
type Action interface {
	Kind() Kind
	sealed()
}

// Target describes the HTTP call an Intent asks the middleware to make.
type Target struct {
	Success Kind
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

// Intent asks the API middleware to perform Target and dispatch the outcome.
// ID correlates log lines; it does not order responses.
type Intent struct {
	ID     string
	Target Target
	Failed bool
	Origin string

	// PlaylistID is set for playlist mutations so a bare acknowledgement
	// body can still be attributed to a playlist.
	PlaylistID string
}

// CuesheetResult carries a decoded search response.
type CuesheetResult struct {
	Cuesheets []cuer.Cuesheet
}

// AddToListDialog opens the "add to playlist" dialog for a cuesheet.
type AddToListDialog struct {
	ID    string
	Title string
}

// CloseDialog hides the "add to playlist" dialog.
type CloseDialog struct{}

// PlaylistResult carries the authoritative playlist list.
type PlaylistResult struct {
	Playlists []cuer.Playlist
}

// PlaylistCreated carries the playlist the server just created.
type PlaylistCreated struct {
	Playlist cuer.Playlist
}

// PlaylistCreateName echoes the create-form input.
type PlaylistCreateName struct {
	Name string
}

// PlaylistRemoved reports a deleted playlist.
type PlaylistRemoved struct {
	Playlist cuer.Playlist
}

// PlaylistUpdated reports a playlist whose membership changed.
type PlaylistUpdated struct {
	Playlist cuer.Playlist
}

// Failure is the terminal action for an intent that did not succeed.
type Failure struct {
	IntentID string
	Origin   string
	Expected Kind
	Err      error
}

// Error always reports true; a Failure is the error marker.
func (Failure) Error() bool { return true }

func (Intent) Kind() Kind             { return KindAPI }
func (CuesheetResult) Kind() Kind     { return KindCuesheetResult }
func (AddToListDialog) Kind() Kind    { return KindCuesheetAddToListDialog }
func (CloseDialog) Kind() Kind        { return KindCuesheetCloseDialog }
func (PlaylistResult) Kind() Kind     { return KindPlaylistResult }
func (PlaylistCreated) Kind() Kind    { return KindPlaylistCreated }
func (PlaylistCreateName) Kind() Kind { return KindPlaylistCreateName }
func (PlaylistRemoved) Kind() Kind    { return KindPlaylistRemoved }
func (PlaylistUpdated) Kind() Kind    { return KindPlaylistUpdated }
func (Failure) Kind() Kind            { return KindFailure }

func (Intent) sealed()             {}
func (CuesheetResult) sealed()     {}
func (AddToListDialog) sealed()    {}
func (CloseDialog) sealed()        {}
func (PlaylistResult) sealed()     {}
func (PlaylistCreated) sealed()    {}
func (PlaylistCreateName) sealed() {}
func (PlaylistRemoved) sealed()    {}
func (PlaylistUpdated) sealed()    {}
func (Failure) sealed()            {}
