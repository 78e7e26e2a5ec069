package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/flipclock/internal/config"
	"github.com/five82/flipclock/internal/prefs"
	"github.com/five82/flipclock/internal/timeapi"
	"github.com/five82/flipclock/internal/timesource"
	"github.com/five82/flipclock/internal/ui"
)

// Options configure the flip clock application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flipclock/prefs.toml
	Offline    bool   // disables time sync regardless of config
	Fullscreen bool   // start in fullscreen
}

// Run boots the clock TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closer, err := setupLogging(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("load prefs, using defaults")
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	source := timesource.New(clock, loc)

	syncEnabled := cfg.SyncEnabled && !opts.Offline
	if syncEnabled {
		client, err := timeapi.NewClient(cfg.TimeAPIURL)
		if err != nil {
			return fmt.Errorf("init time api client: %w", err)
		}
		log.Info().Str("endpoint", client.Endpoint()).Dur("interval", cfg.SyncInterval).Msg("time sync enabled")
		StartSyncer(ctx, source, client, clock, cfg.SyncInterval)
	} else {
		log.Info().Msg("time sync disabled, using local time")
	}

	uiOpts := ui.Options{
		Context:      ctx,
		Source:       source,
		Clock:        clock,
		TickEvery:    cfg.TickInterval,
		FlipDuration: cfg.FlipDuration,
		SyncEnabled:  syncEnabled,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
		Fullscreen:   opts.Fullscreen,
	}
	return ui.Run(uiOpts)
}
