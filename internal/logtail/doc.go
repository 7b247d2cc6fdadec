// Package logtail reads the tail of cuer's own log file.
//
// While the TUI runs it owns the terminal, so the logger writes to a file
// instead (see config.Config.LogFile). `cuer logs` uses this package to show
// the last lines of that file, optionally filtered by level.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries and scans the file once, so
// memory stays O(maxLines) however large the file grows. Lines come back in
// chronological order.
//
// # Level Filtering
//
// charmbracelet/log's text formatter writes four-letter level tokens (DEBU,
// INFO, WARN, ERRO, FATA). FilterLevel keys off those; continuation lines
// without a token inherit the decision of the preceding line.
package logtail
