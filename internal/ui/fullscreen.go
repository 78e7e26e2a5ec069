package ui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

// ErrFullscreenUnavailable is reported when stdout is not a terminal that can
// switch to the alternate screen.
var ErrFullscreenUnavailable = errors.New("fullscreen unavailable: stdout is not a terminal")

// fullscreenProbe reports whether the alternate screen can be used.
type fullscreenProbe func() bool

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// toggleFullscreen enters or leaves the alternate screen. When the terminal
// cannot do either the request is logged and the view stays as it is.
func (m Model) toggleFullscreen() (Model, tea.Cmd) {
	if m.canFullscreen == nil || !m.canFullscreen() {
		log.Warn().Err(ErrFullscreenUnavailable).Bool("fullscreen", m.fullscreen).Msg("fullscreen toggle ignored")
		return m, nil
	}
	m.fullscreen = !m.fullscreen
	log.Debug().Bool("fullscreen", m.fullscreen).Msg("fullscreen toggled")
	if m.fullscreen {
		return m, tea.EnterAltScreen
	}
	return m, tea.ExitAltScreen
}
