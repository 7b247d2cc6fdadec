package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

// scriptedMiddleware answers every intent with a fixed outcome once release
// is closed; other actions pass straight through.
type scriptedMiddleware struct {
	outcome action.Action
	release chan struct{}
}

func (m *scriptedMiddleware) Handle(ctx context.Context, a action.Action, next func(action.Action)) <-chan action.Action {
	out := make(chan action.Action, 1)
	if _, ok := a.(action.Intent); !ok {
		next(a)
		out <- a
		close(out)
		return out
	}
	go func() {
		<-m.release
		next(m.outcome)
		out <- m.outcome
		close(out)
	}()
	return out
}

func TestNewStore_InitialState(t *testing.T) {
	s := NewStore(nil)
	snap := s.Snapshot()
	if snap.Search.SearchResult == nil || len(snap.Search.SearchResult) != 0 {
		t.Fatalf("SearchResult = %#v, want empty non-nil", snap.Search.SearchResult)
	}
	if !snap.Playlists.Refresh {
		t.Fatalf("Refresh = false, want true")
	}
	if snap.Search.DialogOpen || snap.Playlists.CreateForm.Name != "" {
		t.Fatalf("initial snapshot = %#v", snap)
	}
}

func TestStore_ApplyAndSnapshotClone(t *testing.T) {
	s := NewStore(nil)
	before := time.Now()
	s.Apply(action.CuesheetResult{Cuesheets: []cuer.Cuesheet{{ID: "1", Score: 0.2}, {ID: "2", Score: 0.8}}})

	snap := s.Snapshot()
	if len(snap.Search.SearchResult) != 2 || snap.Search.SearchResult[0].ID != "2" {
		t.Fatalf("SearchResult = %#v, want sorted 2 items", snap.Search.SearchResult)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	snap.Search.SearchResult[0].ID = "999"
	if again := s.Snapshot(); again.Search.SearchResult[0].ID != "2" {
		t.Fatalf("Snapshot should clone results; got id %q", again.Search.SearchResult[0].ID)
	}
}

func TestStore_FailureKeepsPreviousData(t *testing.T) {
	s := NewStore(nil)
	s.Apply(action.PlaylistResult{Playlists: []cuer.Playlist{{ID: "1"}}})

	origErr := errors.New("boom")
	s.Apply(action.Failure{Origin: "playlists", Err: origErr})
	snap := s.Snapshot()
	if len(snap.Playlists.PlaylistsResult) != 1 {
		t.Fatalf("playlists changed on failure: %#v", snap.Playlists.PlaylistsResult)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" || snap.LastFailureOrigin != "playlists" {
		t.Fatalf("LastError = %v origin %q, want boom/playlists", snap.LastError, snap.LastFailureOrigin)
	}
	if snap.LastError != origErr {
		t.Fatalf("Snapshot LastError = %#v, want the stored error value", snap.LastError)
	}
	if snap.IsOffline() {
		t.Fatalf("IsOffline after one failure")
	}

	s.Apply(action.Failure{Err: origErr})
	if !s.Snapshot().IsOffline() {
		t.Fatalf("IsOffline = false after two failures")
	}

	s.Apply(action.PlaylistResult{})
	snap = s.Snapshot()
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("success did not reset failures: %#v", snap)
	}
}

func TestStore_DispatchWithoutMiddlewareSettlesImmediately(t *testing.T) {
	s := NewStore(nil)
	out, err := Await(context.Background(), s.Dispatch(context.Background(), action.CreatePlaylistName("Spring Ball")))
	if err != nil {
		t.Fatalf("Await returned error: %v", err)
	}
	if out.Kind() != action.KindPlaylistCreateName {
		t.Fatalf("outcome kind = %v", out.Kind())
	}
	if s.Snapshot().Playlists.CreateForm.Name != "Spring Ball" {
		t.Fatalf("draft not applied")
	}
}

func TestStore_DispatchTracksInFlightIntents(t *testing.T) {
	mw := &scriptedMiddleware{
		outcome: action.PlaylistResult{Playlists: []cuer.Playlist{{ID: "1"}}},
		release: make(chan struct{}),
	}
	s := NewStore(mw)
	notify, unsubscribe := s.Subscribe()
	defer unsubscribe()

	ch := s.Dispatch(context.Background(), action.ListPlaylists(nil))
	if got := s.Snapshot().InFlight; got != 1 {
		t.Fatalf("InFlight = %d, want 1", got)
	}
	close(mw.release)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := Await(ctx, ch)
	if err != nil {
		t.Fatalf("Await returned error: %v", err)
	}
	if out.Kind() != action.KindPlaylistResult {
		t.Fatalf("outcome kind = %v", out.Kind())
	}
	snap := s.Snapshot()
	if snap.InFlight != 0 || snap.Playlists.Refresh || len(snap.Playlists.PlaylistsResult) != 1 {
		t.Fatalf("snapshot after outcome = %#v", snap)
	}
	select {
	case <-notify:
	case <-ctx.Done():
		t.Fatalf("subscriber was not notified")
	}
}

func TestStore_LocalActionsPassThroughMiddleware(t *testing.T) {
	mw := &scriptedMiddleware{release: make(chan struct{})}
	s := NewStore(mw)
	<-s.Dispatch(context.Background(), action.OpenAddToListDialog("1", "Waltz Basics"))
	snap := s.Snapshot()
	if !snap.Search.DialogOpen || snap.InFlight != 0 {
		t.Fatalf("snapshot = %#v, want dialog open and nothing in flight", snap)
	}
}

func TestStore_ConcurrentApplyIsSerialised(t *testing.T) {
	s := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Apply(action.PlaylistUpdated{Playlist: cuer.Playlist{ID: string(rune('a' + i%5))}})
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()
	if got := len(s.Snapshot().Playlists.PlaylistsResult); got != 5 {
		t.Fatalf("PlaylistsResult has %d entries, want 5 unique ids", got)
	}
}

func TestStore_UnsubscribeStopsSignals(t *testing.T) {
	s := NewStore(nil)
	notify, unsubscribe := s.Subscribe()
	unsubscribe()
	unsubscribe()
	s.Apply(action.CloseAddToListDialog())
	select {
	case <-notify:
		t.Fatalf("received signal after unsubscribe")
	default:
	}
}

func TestAwait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Await(ctx, make(chan action.Action)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Await error = %v, want context.Canceled", err)
	}
}
