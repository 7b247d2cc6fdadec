// Package action defines the closed set of actions flowing through the store
// and the creators that build them.
//
// Intents (KindAPI) describe an HTTP call plus the kind of action to dispatch
// when it succeeds. Every other kind is applied directly by the reducers.
// Because Action has an unexported method, a type switch over the concrete
// types in this package is exhaustive; a new kind shows up as a missing case
// rather than a silent runtime no-op.
//
// Creators are pure apart from minting a uuid for log correlation. The
// optional error argument only sets Intent.Failed, which always equals
// err != nil.
package action
