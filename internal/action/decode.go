package action

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/five82/cuer/internal/cuer"
)

// Decode turns a successful response body into the typed success action the
// intent asked for. Errors wrap cuer.ErrDecode.
func Decode(in Intent, body []byte) (Action, error) {
	switch in.Target.Success {
	case KindCuesheetResult:
		var hits []cuer.Cuesheet
		if err := unmarshal(body, &hits); err != nil {
			return nil, err
		}
		return CuesheetResult{Cuesheets: hits}, nil
	case KindPlaylistResult:
		var lists []cuer.Playlist
		if err := unmarshal(body, &lists); err != nil {
			return nil, err
		}
		return PlaylistResult{Playlists: lists}, nil
	case KindPlaylistCreated:
		var p cuer.Playlist
		if err := unmarshal(body, &p); err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: created playlist has no id", cuer.ErrDecode)
		}
		return PlaylistCreated{Playlist: p}, nil
	case KindPlaylistRemoved:
		p, err := decodeMutation(in, body)
		if err != nil {
			return nil, err
		}
		return PlaylistRemoved{Playlist: p}, nil
	case KindPlaylistUpdated:
		p, err := decodeMutation(in, body)
		if err != nil {
			return nil, err
		}
		return PlaylistUpdated{Playlist: p}, nil
	default:
		return nil, fmt.Errorf("%w: no payload for %s", cuer.ErrDecode, in.Target.Success)
	}
}

// decodeMutation accepts either a playlist object or a bare JSON
// acknowledgement (a count or a string); the latter yields a stub carrying
// only the intent's playlist id.
func decodeMutation(in Intent, body []byte) (cuer.Playlist, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var p cuer.Playlist
		if err := unmarshal(trimmed, &p); err != nil {
			return cuer.Playlist{}, err
		}
		if p.ID == "" {
			p.ID = in.PlaylistID
		}
		return p, nil
	}
	var ack any
	if err := unmarshal(trimmed, &ack); err != nil {
		return cuer.Playlist{}, err
	}
	if in.PlaylistID == "" {
		return cuer.Playlist{}, fmt.Errorf("%w: acknowledgement without playlist id", cuer.ErrDecode)
	}
	return cuer.Playlist{ID: in.PlaylistID}, nil
}

func unmarshal(body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %w", cuer.ErrDecode, err)
	}
	return nil
}
