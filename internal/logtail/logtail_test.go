package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exact (10)", 10, expectedAll},
		{"read more than available (15)", 15, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %v, want nil", got)
	}
}

func TestLineLevel(t *testing.T) {
	tests := []struct {
		line string
		want log.Level
		ok   bool
	}{
		{"2026/10/19 10:00:00 WARN cuer: intent failed origin=playlists", log.WarnLevel, true},
		{"2026/10/19 10:00:00 DEBU cuer: dispatch intent", log.DebugLevel, true},
		{"ERRO cuer: boom", log.ErrorLevel, true},
		{"  continuation line", 0, false},
		{"  stack: WARN something", 0, false},
		{"2026/10/19 10:00:00 INFO cuer: retry saw WARN upstream", log.InfoLevel, true},
		{"panic: WARN in message", 0, false},
	}
	for _, tt := range tests {
		got, ok := LineLevel(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("LineLevel(%q) = %v,%v want %v,%v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFilterLevel(t *testing.T) {
	lines := []string{
		"10:00 DEBU cuer: dispatch intent",
		"10:01 WARN cuer: intent failed",
		"  caused by: connection refused",
		"10:02 INFO cuer: started",
		"10:03 ERRO cuer: boom",
	}
	got := FilterLevel(lines, log.WarnLevel)
	want := []string{lines[1], lines[2], lines[4]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterLevel = %v, want %v", got, want)
	}
}
