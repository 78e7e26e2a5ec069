package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flipclock/internal/timesource"
)

type syncState int

const (
	syncOff syncState = iota
	syncPending
	syncOK
	syncFailed
)

// renderHeader renders the status bar: logo, sync status and the toggle icons.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	space := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))

	state, text := syncStatus(m.source.Snapshot(), m.syncEnabled, m.clock.Now())
	var statusStyle lipgloss.Style
	switch state {
	case syncOK:
		statusStyle = styles.SuccessText
	case syncFailed:
		statusStyle = styles.WarningText
	case syncPending:
		statusStyle = styles.AccentText
	default:
		statusStyle = styles.MutedText
	}

	left := styles.Logo.Render("flipclock") + space.Render("  ") + statusStyle.Render(text)

	mode := "windowed"
	if m.fullscreen {
		mode = "fullscreen"
	}
	right := styles.FaintText.Render(mode) + space.Render("  ") + styles.Text.Render(m.theme.Icon())

	gap := 2
	if m.width > 0 {
		// Header padding takes one column on each side.
		if w := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right); w > gap {
			gap = w
		}
	}
	content := left + space.Render(strings.Repeat(" ", gap)) + right

	header := styles.Header
	if m.width > 0 {
		header = header.Width(m.width)
	}
	return header.Render(content)
}

// syncStatus summarises the time source for the header.
func syncStatus(snap timesource.Snapshot, enabled bool, now time.Time) (syncState, string) {
	switch {
	case !enabled:
		return syncOff, "local time"
	case snap.UseLocal:
		text := "sync failed, local time"
		if snap.ConsecutiveFailures > 1 {
			text = fmt.Sprintf("sync failed ×%d, local time", snap.ConsecutiveFailures)
		}
		return syncFailed, text
	case !snap.Synced():
		return syncPending, "syncing…"
	}
	ago := humanizeDuration(now.Sub(snap.LastSync))
	if ago == "now" {
		return syncOK, "synced just now, offset " + formatOffset(snap.Offset)
	}
	return syncOK, fmt.Sprintf("synced %s ago, offset %s", ago, formatOffset(snap.Offset))
}

// formatOffset renders a signed offset: milliseconds below one second,
// seconds with millisecond precision above.
func formatOffset(d time.Duration) string {
	d = d.Round(time.Millisecond)
	abs := d
	if abs < 0 {
		abs = -abs
	}
	if abs < time.Second {
		return fmt.Sprintf("%+dms", d.Milliseconds())
	}
	return fmt.Sprintf("%+.3fs", d.Seconds())
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
