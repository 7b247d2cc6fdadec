// Package app is the composition root for cuer.
//
// Open loads config.toml and prefs.toml, builds the charmbracelet/log
// logger, the API client, the dispatch middleware and the store, and hands
// them back as a Runtime. The TUI (Run) and every CLI command share that
// wiring, so an intent behaves the same whichever surface sent it.
//
//	Open()
//	  ├─> config.Load()        read ~/.config/cuer/config.toml
//	  ├─> prefs.Load()         theme and last query
//	  ├─> logging.New()        log file, or the writer the caller passes
//	  ├─> cuer.NewClient()     HTTP client for the API
//	  └─> state.NewStore(middleware.NewAPI(...))
//
// There is no background polling. Data is fetched only when an action asks
// for it, and a failed request is reported, never retried.
package app
