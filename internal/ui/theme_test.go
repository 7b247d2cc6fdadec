package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/five82/cuer/internal/cuer"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(unknown) = %q, want Dracula", got)
	}
}

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("Solarized").Name; got != "Dracula" {
		t.Fatalf("GetTheme(Solarized).Name = %q, want Dracula", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got)
	}
}

func TestThemesColorEveryPhase(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, phase := range []string{"II", "III", "IV", "V", "VI"} {
			if th.PhaseColors[phase] == "" {
				t.Fatalf("%s has no color for phase %s", name, phase)
			}
		}
	}
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: 503", cuer.ErrStatus), "API ERROR"},
		{fmt.Errorf("%w: eof", cuer.ErrDecode), "BAD RESPONSE"},
		{errors.New("dial tcp: connection refused"), "OFFLINE"},
		{errors.New("lookup api: no such host"), "HOST NOT FOUND"},
		{errors.New("i/o timeout"), "TIMEOUT"},
		{errors.New("boom"), "ERROR"},
	}
	for _, tt := range tests {
		if got := classifyConnectionError(tt.err); got != tt.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  Waltz Basics  ", 20); got != "Waltz Basics" {
		t.Fatalf("truncate trims: %q", got)
	}
	if got := truncate("Waltz Basics", 8); got != "Waltz..." {
		t.Fatalf("truncate = %q, want Waltz...", got)
	}
	if got := truncateMiddle("http://example.com/api", 9); got != "http…/api" {
		t.Fatalf("truncateMiddle = %q, want http…/api", got)
	}
	if got := truncateMiddle("short", 10); got != "short" {
		t.Fatalf("truncateMiddle short = %q", got)
	}
}
