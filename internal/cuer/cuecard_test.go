package cuer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_CuecardFetchesDocument(t *testing.T) {
	t.Parallel()

	var gotPath, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/v2/cuecards/c1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<h1>Waltz Basics</h1>"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	doc, err := c.Cuecard(context.Background(), " c1 ")
	if err != nil {
		t.Fatalf("Cuecard returned error: %v", err)
	}
	if doc != "<h1>Waltz Basics</h1>" {
		t.Fatalf("doc = %q", doc)
	}
	if gotPath != "/v2/cuecards/c1" || gotAccept != "text/html" {
		t.Fatalf("request path=%q accept=%q", gotPath, gotAccept)
	}

	if _, err := c.Cuecard(context.Background(), "missing"); !errors.Is(err, ErrStatus) {
		t.Fatalf("missing cuesheet err = %v, want ErrStatus", err)
	}
	if _, err := c.Cuecard(context.Background(), "  "); err == nil {
		t.Fatalf("empty id returned nil error")
	}
}

func TestClient_CuecardURL(t *testing.T) {
	c, err := NewClient("cues.example.com:8000")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if got, want := c.CuecardURL("a b"), "http://cues.example.com:8000/v2/cuecards/a%20b"; got != want {
		t.Fatalf("CuecardURL = %q, want %q", got, want)
	}
}

func TestCuecardText(t *testing.T) {
	doc := `<h1>Waltz Basics</h1>` +
		`<p>Intro: <b>wait</b> 2 meas</p>` +
		`<ol><li>Box</li><li>Twinkle</li></ol>` +
		`<table><tr><th>Part</th><th>Steps</th></tr><tr><td>A</td><td>Box;; Twinkle</td></tr></table>` +
		`<p>line one<br>line two</p>` +
		`<script>alert(1)</script>`

	got, err := CuecardText(doc)
	if err != nil {
		t.Fatalf("CuecardText returned error: %v", err)
	}
	want := "Waltz Basics\n\n" +
		"Intro: wait 2 meas\n\n" +
		"- Box\n- Twinkle\n\n" +
		"Part | Steps\nA | Box;; Twinkle\n\n" +
		"line one\nline two"
	if got != want {
		t.Fatalf("CuecardText =\n%q\nwant\n%q", got, want)
	}
}
