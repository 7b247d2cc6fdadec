// Package config loads cuer's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cuer/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but a field is missing or blank, use its default
//
// # Default Values
//
//   - API root: http://127.0.0.1:8000
//   - Log level: info
//   - Log file: ~/.local/state/cuer/cuer.log
//
// # TOML Format
//
//	api_url = "http://cues.local:8087"
//	log_level = "debug"
//	log_file = "~/.local/state/cuer/cuer.log"
//
// All fields are optional. Tilde expansion is applied to log_file.
//
// # Overrides
//
// Command-line flags and the CUER_API_URL environment variable take
// precedence over the file; the CLI applies them with Config.WithAPIURL.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
