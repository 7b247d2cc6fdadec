package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Read returns at most maxLines from the end of the file at path; maxLines
// <= 0 returns every line. A missing file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// levelTokens are the abbreviations charmbracelet/log's text formatter writes.
var levelTokens = map[string]log.Level{
	"DEBU": log.DebugLevel,
	"INFO": log.InfoLevel,
	"WARN": log.WarnLevel,
	"ERRO": log.ErrorLevel,
	"FATA": log.FatalLevel,
}

// LineLevel reads the level token of a formatted log line. The token is the
// first field after the optional date and time; indented lines and lines
// without one (stack traces, wrapped output) report ok=false.
func LineLevel(line string) (log.Level, bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return 0, false
	}
	fields := strings.Fields(line)
	for i := 0; i < len(fields) && i < 3; i++ {
		if lvl, ok := levelTokens[fields[i]]; ok {
			return lvl, true
		}
		if !isTimestampField(fields[i]) {
			break
		}
	}
	return 0, false
}

// isTimestampField reports whether field is part of the default
// "2006/01/02 15:04:05" prefix.
func isTimestampField(field string) bool {
	return field != "" && field[0] >= '0' && field[0] <= '9'
}

// FilterLevel keeps lines at or above min. Lines without a level token
// follow the verdict of the line before them.
func FilterLevel(lines []string, min log.Level) []string {
	out := make([]string, 0, len(lines))
	keep := false
	for _, line := range lines {
		if lvl, ok := LineLevel(line); ok {
			keep = lvl >= min
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}
