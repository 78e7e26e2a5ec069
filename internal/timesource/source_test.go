package timesource

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var epoch = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

func TestSource_DefaultsToLocalTime(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	s := New(clock, time.UTC)

	if got := s.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	snap := s.Snapshot()
	if snap.Offset != 0 || snap.UseLocal || snap.Synced() {
		t.Fatalf("snapshot = %#v, want zero offset, not synced", snap)
	}
}

func TestSource_AdjustAppliesOffset(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	s := New(clock, time.UTC)

	offset := s.Adjust(epoch.Add(90 * time.Second))
	if offset != 90*time.Second {
		t.Fatalf("Adjust offset = %v, want 90s", offset)
	}

	clock.Advance(10 * time.Second)
	want := epoch.Add(100 * time.Second)
	if got := s.Now(); !got.Equal(want) {
		t.Fatalf("Now() = %v, want %v", got, want)
	}
	if !s.Snapshot().Synced() {
		t.Fatalf("Synced() = false after Adjust")
	}
}

func TestSource_FallbackIgnoresOffsetUntilNextSync(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	s := New(clock, time.UTC)

	s.Adjust(epoch.Add(-time.Minute))
	s.Fallback(errors.New("network down"))

	if got := s.Now(); !got.Equal(s.Local()) {
		t.Fatalf("Now() = %v, want raw local %v", got, s.Local())
	}
	snap := s.Snapshot()
	if !snap.UseLocal || snap.Synced() {
		t.Fatalf("snapshot = %#v, want use-local fallback", snap)
	}
	if snap.Offset != -time.Minute {
		t.Fatalf("Offset = %v, want previous offset kept", snap.Offset)
	}
	if snap.LastError == nil || snap.LastError.Error() != "network down" {
		t.Fatalf("LastError = %v, want network down", snap.LastError)
	}

	s.Fallback(errors.New("again"))
	if got := s.Snapshot().ConsecutiveFailures; got != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", got)
	}

	s.Adjust(epoch.Add(time.Second))
	snap = s.Snapshot()
	if snap.UseLocal || snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("snapshot after recovery = %#v, want cleared failure state", snap)
	}
	if got := s.Now(); !got.Equal(epoch.Add(time.Second)) {
		t.Fatalf("Now() after recovery = %v, want %v", got, epoch.Add(time.Second))
	}
}

func TestSource_NowUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	s := New(clockwork.NewFakeClockAt(epoch), loc)

	got := s.Now()
	if got.Location() != loc {
		t.Fatalf("Now().Location() = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 11 {
		t.Fatalf("Now().Hour() = %d, want 11", got.Hour())
	}
}
