// Package ui implements the cuer terminal interface on Bubble Tea.
//
// The Model renders from state.Store snapshots and never mutates state
// directly: key presses become actions that go through Store.Dispatch, and
// settled intents come back as outcome messages. Three views map onto the
// client routes:
//
//   - "/" search box and ranked cuesheet results
//   - "/playlists" the playlist collection with create and delete
//   - "/playlists/:id" one playlist's cuesheets
//
// The add-to-playlist dialog overlays the search view while the store's
// search slice reports it open. Its playlist picker is filtered with
// github.com/lithammer/fuzzysearch.
//
// After a playlist mutation settles, the Model refetches the collection if
// the store marked it stale. Failed fetches are shown in the header and are
// not retried automatically; press r to try again.
package ui
