package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

// Middleware sits between Dispatch and the reducers. Handle must call next
// with the terminal action for a exactly once and yield that same action on
// the returned channel.
type Middleware interface {
	Handle(ctx context.Context, a action.Action, next func(action.Action)) <-chan action.Action
}

// Snapshot is a copy of everything the views render from.
type Snapshot struct {
	Search              SearchState
	Playlists           PlaylistsState
	LastUpdated         time.Time
	LastError           error
	LastFailureOrigin   string
	ConsecutiveFailures int
	InFlight            int
}

// IsOffline reports whether the API failed on the last two outcomes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// PlaylistByID looks a playlist up in the fetched collection.
func (s Snapshot) PlaylistByID(id string) (cuer.Playlist, bool) {
	return s.Playlists.PlaylistByID(id)
}

// Store owns both state slices. Reducer applications are serialised by the
// store lock, one action at a time; nothing orders the HTTP calls themselves.
type Store struct {
	mu         sync.RWMutex
	snapshot   Snapshot
	middleware Middleware
	subs       map[int]chan struct{}
	nextSub    int
}

// NewStore builds a store with both slices at their initial state. A nil
// middleware applies every action, intents included, straight to the reducers.
func NewStore(mw Middleware) *Store {
	return &Store{
		snapshot: Snapshot{
			Search:    InitialSearch(),
			Playlists: InitialPlaylists(),
		},
		middleware: mw,
		subs:       make(map[int]chan struct{}),
	}
}

// Dispatch routes a through the middleware. The returned channel yields the
// terminal action once it has been applied, then closes.
func (s *Store) Dispatch(ctx context.Context, a action.Action) <-chan action.Action {
	if s.middleware == nil {
		s.apply(a, false)
		return settled(a)
	}
	_, isIntent := a.(action.Intent)
	if isIntent {
		s.mu.Lock()
		s.snapshot.InFlight++
		s.mu.Unlock()
	}
	return s.middleware.Handle(ctx, a, func(out action.Action) {
		s.apply(out, isIntent)
	})
}

// Apply runs a through the reducers without the middleware.
func (s *Store) Apply(a action.Action) {
	s.apply(a, false)
}

func (s *Store) apply(a action.Action, settlesIntent bool) {
	s.mu.Lock()
	s.snapshot.Search = ReduceSearch(s.snapshot.Search, a)
	s.snapshot.Playlists = ReducePlaylists(s.snapshot.Playlists, a)

	switch a := a.(type) {
	case action.Failure:
		s.snapshot.LastError = a.Err
		s.snapshot.LastFailureOrigin = a.Origin
		s.snapshot.ConsecutiveFailures++
	case action.CuesheetResult, action.PlaylistResult, action.PlaylistCreated,
		action.PlaylistUpdated, action.PlaylistRemoved:
		s.snapshot.LastError = nil
		s.snapshot.LastFailureOrigin = ""
		s.snapshot.ConsecutiveFailures = 0
	}
	if settlesIntent && s.snapshot.InFlight > 0 {
		s.snapshot.InFlight--
	}
	s.snapshot.LastUpdated = time.Now()

	subs := make([]chan struct{}, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Search = s.snapshot.Search.Clone()
	snap.Playlists = s.snapshot.Playlists.Clone()
	return snap
}

// Subscribe returns a channel that receives a signal after actions are
// applied. Signals coalesce; readers should take a fresh Snapshot on each.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Await blocks until the dispatched action settles or ctx ends.
func Await(ctx context.Context, ch <-chan action.Action) (action.Action, error) {
	select {
	case out, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("dispatch closed without an outcome")
		}
		return out, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func settled(a action.Action) <-chan action.Action {
	ch := make(chan action.Action, 1)
	ch <- a
	close(ch)
	return ch
}
