// Package config loads the flip clock's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flipclock/config.toml
//  3. If the file doesn't exist, start from Default()
//  4. Fields that are missing or blank keep their defaults
//  5. FLIPCLOCK_* environment variables override whatever the file set
//
// # Default Values
//
//   - time_api_url:  https://worldtimeapi.org/api/ip
//   - sync_enabled:  true
//   - sync_interval: 1h
//   - tick_interval: 1s
//   - flip_duration: 600ms
//   - timezone:      "" (the process-local zone)
//   - log_path:      ~/.local/state/flipclock/flipclock.log
//   - log_level:     info
//
// # TOML Format
//
//	time_api_url = "https://worldtimeapi.org/api/ip"
//	sync_enabled = true
//	sync_interval = "1h"
//	flip_duration = "600ms"
//	timezone = "Europe/Berlin"
//
// Durations use Go duration syntax and must be positive.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, invalid
// TOML, bad durations, unparseable FLIPCLOCK_SYNC_ENABLED values, and unknown
// timezones. A missing file is not an error.
package config
