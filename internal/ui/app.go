package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/flipclock/internal/face"
	"github.com/five82/flipclock/internal/flip"
	"github.com/five82/flipclock/internal/prefs"
	"github.com/five82/flipclock/internal/surface"
	"github.com/five82/flipclock/internal/timesource"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Source       *timesource.Source
	Clock        clockwork.Clock
	TickEvery    time.Duration
	FlipDuration time.Duration
	SyncEnabled  bool
	ThemeName    string
	PrefsPath    string
	Fullscreen   bool
}

const defaultTickInterval = time.Second

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	source      *timesource.Source
	clock       clockwork.Clock
	tickEvery   time.Duration
	syncEnabled bool
	prefsPath   string

	// Face
	board *surface.Board
	loop  *face.Loop

	// UI state
	theme         Theme
	keys          keyMap
	help          help.Model
	width         int
	height        int
	ready         bool
	fullscreen    bool
	canFullscreen fullscreenProbe
}

// New creates a new Bubble Tea model bound to a fresh board.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	source := opts.Source
	if source == nil {
		source = timesource.New(clock, nil)
	}

	tickEvery := opts.TickEvery
	if tickEvery <= 0 {
		tickEvery = defaultTickInterval
	}

	flipDuration := opts.FlipDuration
	if flipDuration <= 0 {
		flipDuration = flip.DefaultDuration
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	board := surface.NewBoard(face.CardIDs(), []string{face.PeriodID, face.DateID})
	loop, err := face.NewLoop(source, board, face.WithClock(clock), face.WithFlipDuration(flipDuration))
	if err != nil {
		return Model{}, fmt.Errorf("init clock face: %w", err)
	}

	m := Model{
		ctx:           ctx,
		source:        source,
		clock:         clock,
		tickEvery:     tickEvery,
		syncEnabled:   opts.SyncEnabled,
		prefsPath:     prefsPath,
		board:         board,
		loop:          loop,
		theme:         GetTheme(opts.ThemeName),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		canFullscreen: stdoutIsTerminal,
	}
	m.applyHelpStyles()

	if opts.Fullscreen {
		if m.canFullscreen() {
			m.fullscreen = true
		} else {
			log.Warn().Err(ErrFullscreenUnavailable).Msg("starting windowed")
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// First tick runs immediately so the face never shows the sentinel.
	return tickNowCmd(m.clock)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case flipSettleMsg:
		m.loop.Settle()
		return m, m.settleCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme(), nil

	case key.Matches(msg, m.keys.Fullscreen):
		return m.toggleFullscreen()
	}
	return m, nil
}

// handleTick advances the face and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	changed := m.loop.Tick()

	cmds := []tea.Cmd{tickCmd(m.tickEvery)}
	if len(changed) > 0 {
		log.Debug().
			Str("display", m.loop.Display().String()).
			Int("changed", len(changed)).
			Msg("flipping cards")
		cmds = append(cmds, m.settleCmd())
	}
	return m, tea.Batch(cmds...)
}

// toggleTheme switches between light and dark and persists the choice.
func (m Model) toggleTheme() Model {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyHelpStyles()
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		log.Warn().Err(err).Str("path", m.prefsPath).Msg("save theme preference")
	}
	return m
}

func (m *Model) applyHelpStyles() {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))

	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle
}

// Messages

type tickMsg time.Time

type flipSettleMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func tickNowCmd(clock clockwork.Clock) tea.Cmd {
	return func() tea.Msg {
		return tickMsg(clock.Now())
	}
}

// settleCmd fires at the earliest pending flip deadline. It returns nil when
// no card is flipping.
func (m Model) settleCmd() tea.Cmd {
	deadline, ok := m.loop.NextDeadline()
	if !ok {
		return nil
	}
	wait := deadline.Sub(m.clock.Now())
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return flipSettleMsg{}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithContext(m.ctx)}
	if m.fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, programOpts...)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
