package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestOpen_FlagOverridesConfig(t *testing.T) {
	cfgPath := writeConfig(t, "api_url = \"http://config.invalid:9\"\nlog_level = \"warn\"\n")
	var logs bytes.Buffer

	rt, err := Open(Options{
		ConfigPath: cfgPath,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
		APIURL:     "http://127.0.0.1:9999",
		LogLevel:   "debug",
	}, &logs)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rt.Close()

	if rt.Client.BaseURL() != "http://127.0.0.1:9999" {
		t.Fatalf("BaseURL = %q", rt.Client.BaseURL())
	}
	if rt.Config.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", rt.Config.LogLevel)
	}
	if rt.Prefs.Theme != "Dracula" {
		t.Fatalf("Prefs.Theme = %q, want default", rt.Prefs.Theme)
	}
	if !strings.Contains(logs.String(), "runtime ready") {
		t.Fatalf("debug log missing: %q", logs.String())
	}
}

func TestOpen_WritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "state", "cuer.log")
	cfgPath := writeConfig(t, "log_file = \""+filepath.ToSlash(logPath)+"\"\nlog_level = \"debug\"\n")

	rt, err := Open(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "runtime ready") {
		t.Fatalf("log file = %q", data)
	}
}

func TestOpen_BadConfig(t *testing.T) {
	cfgPath := writeConfig(t, "api_url = [")
	if _, err := Open(Options{ConfigPath: cfgPath}, &bytes.Buffer{}); err == nil {
		t.Fatalf("Open with malformed config succeeded")
	}
}

func TestRuntimeDispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/search/waltz":
			_, _ = w.Write([]byte(`[{"id":"1","title":"Waltz Basics","rhythm":"Waltz","phase":"II","score":0.9}]`))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	rt, err := Open(Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
		APIURL:     srv.URL,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rt.Close()

	out, err := rt.Dispatch(context.Background(), action.SearchCuesheets("waltz", nil))
	if err != nil {
		t.Fatalf("Dispatch search: %v", err)
	}
	if res, ok := out.(action.CuesheetResult); !ok || len(res.Cuesheets) != 1 {
		t.Fatalf("outcome = %#v", out)
	}
	if got := rt.Store.Snapshot().Search.SearchResult; len(got) != 1 || got[0].Title != "Waltz Basics" {
		t.Fatalf("store SearchResult = %#v", got)
	}

	out, err = rt.Dispatch(context.Background(), action.ListPlaylists(nil))
	if !errors.Is(err, cuer.ErrStatus) {
		t.Fatalf("Dispatch list err = %v, want ErrStatus", err)
	}
	if _, ok := out.(action.Failure); !ok {
		t.Fatalf("outcome = %#v, want Failure", out)
	}
	if rt.Store.Snapshot().LastError == nil {
		t.Fatalf("LastError not recorded")
	}
}
