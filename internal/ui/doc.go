// Package ui provides the terminal flip clock built on Bubble Tea.
//
// # Architecture Overview
//
// The Model owns an in-memory surface.Board with four cards and two labels
// and a face.Loop bound to it. Bubble Tea's Update loop is the only place the
// board and loop are touched, so neither needs locking. The header reads the
// time source snapshot, which the background syncer updates under a mutex.
//
// # Timing
//
//   - Init issues a tick immediately, then every tick interval (1s default)
//   - Each tick that changes a digit schedules a flipSettleMsg for the
//     earliest pending flip deadline
//   - Settling before a deadline is a no-op; the settle command re-arms
//     itself while any card is still flipping
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and Run
//   - render.go: card, colon, period and date layout
//   - glyph.go: block digits split into top and bottom leaves
//   - header.go: sync status bar with theme icon
//   - theme.go: dark and light palettes
//   - keys.go: bubbles key bindings
//   - fullscreen.go: alternate screen toggle behind a terminal probe
//
// # Keyboard Shortcuts
//
//   - t: Toggle between light and dark, persisted to prefs
//   - f: Toggle fullscreen (alternate screen)
//   - ?: Toggle full help
//   - q, esc, ctrl+c: Quit
//
// # Fullscreen
//
// Fullscreen is only attempted when stdout is a terminal. Otherwise the
// request is logged with ErrFullscreenUnavailable and nothing changes on
// screen.
package ui
