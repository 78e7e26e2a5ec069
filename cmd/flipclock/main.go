package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/five82/flipclock/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/flipclock/config.toml)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	offline := flag.Bool("offline", false, "disable time sync and show local time")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	// A missing .env is the common case.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Offline:    *offline,
		Fullscreen: *fullscreen,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flipclock: %v\n", err)
		return 1
	}
	return 0
}
