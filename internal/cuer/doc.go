// Package cuer provides the wire types and HTTP client for the cuesheet API.
//
// # Overview
//
// The API serves full-text cuesheet search and a playlist store. This package
// only knows how to send one request and hand back the raw body; turning
// bodies into typed results is the job of the action and middleware packages,
// which decide the expected payload from the intent being dispatched.
//
// # Endpoints
//
//   - GET    /v2/search/{query}                       list of Cuesheet
//   - GET    /v2/playlists                            list of Playlist
//   - PUT    /v2/playlists                            created Playlist
//   - DELETE /v2/playlists/{id}                       deleted Playlist
//   - PUT    /v2/playlists/{id}/cuesheet/{cuesheetId}  add to playlist
//   - DELETE /v2/playlists/{id}/cuesheet/{cuesheetId}  remove from playlist
//
// # Error Handling
//
// Client.Do classifies failures with sentinel errors so callers can use
// errors.Is:
//
//   - ErrTransport: no response (connection refused, DNS, cancelled context)
//   - ErrStatus: the server answered with a status >= 400
//
// ErrDecode and ErrUnsupportedMethod are raised by the middleware but live
// here so every API failure shares one vocabulary.
//
// # Retries
//
// There are none. Every call is issued exactly once and the http.Client has
// no timeout; the only way to abort a call is to cancel its context.
package cuer
