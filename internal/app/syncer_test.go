package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/five82/flipclock/internal/timesource"
)

var epoch = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

// fakeFetcher returns the configured results in order and reports each call.
type fakeFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	calls   chan struct{}
}

type fetchResult struct {
	remote time.Time
	err    error
}

func newFakeFetcher(results ...fetchResult) *fakeFetcher {
	return &fakeFetcher{results: results, calls: make(chan struct{}, 16)}
}

func (f *fakeFetcher) FetchTime(context.Context) (time.Time, error) {
	f.mu.Lock()
	var r fetchResult
	if len(f.results) > 0 {
		r = f.results[0]
		f.results = f.results[1:]
	} else {
		r = fetchResult{err: errors.New("no more results")}
	}
	f.mu.Unlock()

	f.calls <- struct{}{}
	return r.remote, r.err
}

func waitForCall(t *testing.T, f *fakeFetcher) {
	t.Helper()
	select {
	case <-f.calls:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for fetch")
	}
}

func TestSyncOnce_SuccessAppliesOffset(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	source := timesource.New(clock, time.UTC)
	fetcher := newFakeFetcher(fetchResult{remote: epoch.Add(3 * time.Second)})

	syncOnce(context.Background(), source, fetcher)

	snap := source.Snapshot()
	if snap.Offset != 3*time.Second || snap.UseLocal {
		t.Fatalf("snapshot = %#v, want 3s offset and UseLocal false", snap)
	}
	if got := source.Now(); !got.Equal(epoch.Add(3 * time.Second)) {
		t.Fatalf("Now() = %v, want local+3s", got)
	}
}

func TestSyncOnce_FailureFallsBackToLocal(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	source := timesource.New(clock, time.UTC)
	source.Adjust(epoch.Add(time.Minute))

	boom := errors.New("connection refused")
	syncOnce(context.Background(), source, newFakeFetcher(fetchResult{err: boom}))

	snap := source.Snapshot()
	if !snap.UseLocal {
		t.Fatalf("UseLocal = false, want true after failure")
	}
	if !errors.Is(snap.LastError, boom) {
		t.Fatalf("LastError = %v, want %v", snap.LastError, boom)
	}
	if got := source.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want raw local %v", got, epoch)
	}
}

func TestSyncOnce_RecoversAfterFailure(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	source := timesource.New(clock, time.UTC)
	fetcher := newFakeFetcher(
		fetchResult{err: errors.New("status 503")},
		fetchResult{remote: epoch.Add(-2 * time.Second)},
	)

	syncOnce(context.Background(), source, fetcher)
	syncOnce(context.Background(), source, fetcher)

	snap := source.Snapshot()
	if snap.UseLocal || snap.Offset != -2*time.Second || snap.ConsecutiveFailures != 0 {
		t.Fatalf("snapshot = %#v, want recovered with -2s offset", snap)
	}
}

func TestSyncOnce_SkipsWhenCancelled(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	source := timesource.New(clock, time.UTC)
	fetcher := newFakeFetcher(fetchResult{remote: epoch.Add(time.Hour)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	syncOnce(ctx, source, fetcher)

	if len(fetcher.calls) != 0 {
		t.Fatalf("fetch was called on a cancelled context")
	}
	if source.Snapshot().Synced() {
		t.Fatalf("source synced, want untouched")
	}
}

func TestStartSyncer_SyncsAtStartupAndEveryInterval(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	source := timesource.New(clock, time.UTC)
	fetcher := newFakeFetcher(
		fetchResult{remote: epoch.Add(time.Second)},
		fetchResult{remote: epoch.Add(time.Hour + 4*time.Second)},
		fetchResult{remote: epoch},
	)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	StartSyncer(ctx, source, fetcher, clock, time.Hour)

	waitForCall(t, fetcher)
	select {
	case <-fetcher.calls:
		t.Fatalf("second fetch before the interval elapsed")
	case <-time.After(50 * time.Millisecond):
	}

	clock.Advance(time.Hour)
	waitForCall(t, fetcher)

	// The third call only starts after the second sync has been applied.
	clock.Advance(time.Hour)
	waitForCall(t, fetcher)
	cancel()
}

func TestStartSyncer_StopsOnCancel(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	source := timesource.New(clock, time.UTC)
	fetcher := newFakeFetcher(fetchResult{remote: epoch})

	ctx, cancel := context.WithCancel(context.Background())
	StartSyncer(ctx, source, fetcher, clock, time.Minute)
	waitForCall(t, fetcher)

	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("BlockUntilContext: %v", err)
	}
	cancel()

	// No fetch may follow cancellation, even when the ticker fires.
	clock.Advance(time.Minute)
	select {
	case <-fetcher.calls:
		t.Fatalf("fetch after cancellation")
	case <-time.After(50 * time.Millisecond):
	}
}
