// Package app is the composition root of the flip clock.
//
// # Overview
//
// Run loads configuration, points the global zerolog logger at the log file,
// reads the theme preference, builds the time source and hands everything to
// the Bubble Tea UI. When time sync is enabled it also starts the background
// syncer.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config.toml + FLIPCLOCK_* env
//	       ├─────> setupLogging()       zerolog to the log file
//	       ├─────> prefs.Load()         flipClockTheme
//	       ├─────> timesource.New()     local clock + offset
//	       ├─────> StartSyncer()        background offset measurement
//	       └─────> ui.Run()             TUI (blocks)
//
// # Sync Behavior
//
// The syncer fetches once at startup and then once per interval (default 1
// hour). A successful fetch sets the offset to remote minus local time at
// receipt. Any failure is logged as a warning and the source falls back to
// raw local time. There is no retry: the next attempt is the next tick.
// Fetches run sequentially in the syncer goroutine.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Log file cannot be opened
//   - Time API client cannot be built from the configured URL
//
// Recoverable errors (logged):
//   - Unreadable prefs file (defaults are used)
//   - Every sync failure
package app
