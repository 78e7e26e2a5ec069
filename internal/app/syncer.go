package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/flipclock/internal/timeapi"
	"github.com/five82/flipclock/internal/timesource"
)

const (
	defaultSyncInterval = time.Hour
	syncTimeout         = 10 * time.Second
)

// StartSyncer launches a background goroutine that measures the offset
// between the time authority and the local clock: once immediately, then on
// every interval. It returns immediately. Syncs run one at a time, so a slow
// request delays the next tick instead of overlapping it.
func StartSyncer(ctx context.Context, source *timesource.Source, fetcher timeapi.TimeFetcher, clock clockwork.Clock, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	go func() {
		ticker := clock.NewTicker(interval)
		defer ticker.Stop()

		for {
			syncOnce(ctx, source, fetcher)
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
			}
		}
	}()
}

// syncOnce performs a single best-effort fetch. Any failure switches the
// source to unadjusted local time until the next success.
func syncOnce(ctx context.Context, source *timesource.Source, fetcher timeapi.TimeFetcher) {
	if ctx.Err() != nil {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	remote, err := fetcher.FetchTime(reqCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		source.Fallback(err)
		log.Warn().Err(err).Msg("time sync failed, using local time")
		return
	}
	offset := source.Adjust(remote)
	log.Info().Dur("offset", offset).Time("remote", remote).Msg("time sync succeeded")
}
