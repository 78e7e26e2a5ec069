package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings of the clock.
type Config struct {
	TimeAPIURL   string
	SyncEnabled  bool
	SyncInterval time.Duration
	TickInterval time.Duration
	FlipDuration time.Duration
	Timezone     string
	LogPath      string
	LogLevel     string
}

const (
	defaultConfigPath   = "~/.config/flipclock/config.toml"
	defaultTimeAPIURL   = "https://worldtimeapi.org/api/ip"
	defaultSyncInterval = time.Hour
	defaultTickInterval = time.Second
	defaultFlipDuration = 600 * time.Millisecond
	defaultLogPath      = "~/.local/state/flipclock/flipclock.log"
	defaultLogLevel     = "info"
)

// Environment variables that override file values.
const (
	EnvTimeAPIURL  = "FLIPCLOCK_TIME_API_URL"
	EnvSyncEnabled = "FLIPCLOCK_SYNC_ENABLED"
	EnvLogLevel    = "FLIPCLOCK_LOG_LEVEL"
	EnvTimezone    = "FLIPCLOCK_TIMEZONE"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TimeAPIURL:   defaultTimeAPIURL,
		SyncEnabled:  true,
		SyncInterval: defaultSyncInterval,
		TickInterval: defaultTickInterval,
		FlipDuration: defaultFlipDuration,
		LogPath:      mustExpand(defaultLogPath),
		LogLevel:     defaultLogLevel,
	}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := decode(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TimeAPIURL   string `toml:"time_api_url"`
		SyncEnabled  *bool  `toml:"sync_enabled"`
		SyncInterval string `toml:"sync_interval"`
		TickInterval string `toml:"tick_interval"`
		FlipDuration string `toml:"flip_duration"`
		Timezone     string `toml:"timezone"`
		LogPath      string `toml:"log_path"`
		LogLevel     string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.TimeAPIURL); v != "" {
		cfg.TimeAPIURL = v
	}
	if raw.SyncEnabled != nil {
		cfg.SyncEnabled = *raw.SyncEnabled
	}
	durations := []struct {
		key  string
		raw  string
		dest *time.Duration
	}{
		{"sync_interval", raw.SyncInterval, &cfg.SyncInterval},
		{"tick_interval", raw.TickInterval, &cfg.TickInterval},
		{"flip_duration", raw.FlipDuration, &cfg.FlipDuration},
	}
	for _, d := range durations {
		if err := parseDuration(d.key, d.raw, d.dest); err != nil {
			return err
		}
	}
	if v := strings.TrimSpace(raw.Timezone); v != "" {
		cfg.Timezone = v
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

func parseDuration(key, raw string, dest *time.Duration) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d <= 0 {
		return fmt.Errorf("parse config: %s must be positive, got %s", key, raw)
	}
	*dest = d
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTimeAPIURL); ok && strings.TrimSpace(v) != "" {
		cfg.TimeAPIURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSyncEnabled); ok && strings.TrimSpace(v) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSyncEnabled, err)
		}
		cfg.SyncEnabled = enabled
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvTimezone); ok && strings.TrimSpace(v) != "" {
		cfg.Timezone = strings.TrimSpace(v)
	}
	return nil
}

// Location resolves the configured timezone; empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
