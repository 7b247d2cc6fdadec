package action

import (
	"errors"
	"testing"

	"github.com/five82/cuer/internal/cuer"
)

func TestDecode_SearchResult(t *testing.T) {
	body := []byte(`[{"id":"1","title":"Waltz Basics","rhythm":"Waltz","phase":"III","score":0.82}]`)
	got, err := Decode(SearchCuesheets("waltz", nil), body)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	res, ok := got.(CuesheetResult)
	if !ok {
		t.Fatalf("Decode = %T, want CuesheetResult", got)
	}
	want := cuer.Cuesheet{ID: "1", Title: "Waltz Basics", Rhythm: "Waltz", Phase: "III", Score: 0.82}
	if len(res.Cuesheets) != 1 || res.Cuesheets[0] != want {
		t.Fatalf("Cuesheets = %#v, want [%#v]", res.Cuesheets, want)
	}
}

func TestDecode_PlaylistKinds(t *testing.T) {
	list, err := Decode(ListPlaylists(nil), []byte(`[{"id":"1","name":"A","cuesheets":[]}]`))
	if err != nil {
		t.Fatalf("Decode list: %v", err)
	}
	if pr := list.(PlaylistResult); len(pr.Playlists) != 1 || pr.Playlists[0].Name != "A" {
		t.Fatalf("PlaylistResult = %#v", pr)
	}

	created, err := Decode(CreatePlaylist("B", nil), []byte(`{"id":"2","name":"B","cuesheets":[]}`))
	if err != nil {
		t.Fatalf("Decode created: %v", err)
	}
	if pc := created.(PlaylistCreated); pc.Playlist.ID != "2" {
		t.Fatalf("PlaylistCreated = %#v", pc)
	}

	updated, err := Decode(AddToPlaylist("2", "c", nil), []byte(`{"id":"2","name":"B","cuesheets":[{"id":"c","title":"Axel F"}]}`))
	if err != nil {
		t.Fatalf("Decode updated: %v", err)
	}
	if pu := updated.(PlaylistUpdated); !pu.Playlist.Contains("c") {
		t.Fatalf("PlaylistUpdated = %#v", pu)
	}
}

func TestDecode_AcknowledgementBodiesYieldStub(t *testing.T) {
	got, err := Decode(RemoveFromPlaylist("9", "c", nil), []byte(`1`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if pu := got.(PlaylistUpdated); pu.Playlist.ID != "9" {
		t.Fatalf("PlaylistUpdated = %#v, want id 9", pu)
	}

	got, err = Decode(AddToPlaylist("9", "c", nil), []byte(`"ok"`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if pu := got.(PlaylistUpdated); pu.Playlist.ID != "9" {
		t.Fatalf("PlaylistUpdated = %#v, want id 9", pu)
	}

	got, err = Decode(DeletePlaylist("9", nil), []byte(`{"name":"gone"}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if pr := got.(PlaylistRemoved); pr.Playlist.ID != "9" {
		t.Fatalf("PlaylistRemoved = %#v, want id 9", pr)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		body   string
	}{
		{"not json", SearchCuesheets("x", nil), "{not-json"},
		{"wrong shape", ListPlaylists(nil), `{"id":"1"}`},
		{"created without id", CreatePlaylist("x", nil), `{"name":"x"}`},
		{"empty body", AddToPlaylist("1", "2", nil), ``},
		{"no success kind", Intent{Target: Target{Success: KindCuesheetCloseDialog}}, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.intent, []byte(tt.body))
			if !errors.Is(err, cuer.ErrDecode) {
				t.Fatalf("Decode error = %v, want ErrDecode", err)
			}
		})
	}
}
