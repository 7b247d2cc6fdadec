// Package state holds the client-side cache of search results and playlists.
//
// # Overview
//
// Two slices make up the state: SearchState (sorted search hits plus the
// "add to playlist" dialog) and PlaylistsState (the playlist collection, a
// staleness flag, and the create-form draft). Both are created explicitly by
// NewStore and change only through the pure reducers ReduceSearch and
// ReducePlaylists.
//
// # Data Flow
//
//	view ──Dispatch(intent)──> middleware ──HTTP──> API
//	                               │
//	                               └─next(outcome)──> Store.apply ──> reducers
//	                                                        │
//	view <──Snapshot()──────────────────────────────────────┘
//
// Dispatch returns a channel that yields the terminal action after it has
// been applied. Local actions settle immediately; intents settle when the
// middleware's request finishes, successfully or not.
//
// # Concurrency Model
//
// The Store serialises reducer application with a sync.RWMutex: one action is
// folded into both slices before the next. This is the only ordering
// guarantee. Two searches in flight can finish in either order and the later
// response wins, even if it belongs to the earlier query.
//
// # Invariants
//
//   - PlaylistsResult never holds two entries with the same id
//   - SearchResult is always ordered by score desc, phase tier asc, title asc
//   - Refresh is set after every playlist mutation and cleared only by a
//     successful PlaylistResult
//
// # Error Propagation
//
// Failure actions leave both slices untouched and record LastError and
// ConsecutiveFailures on the snapshot, the same way the store keeps the last
// good data when a fetch fails. Any successful outcome clears them.
//
// # Snapshots
//
// Snapshot returns deep copies so views can hold on to them without locking.
package state
