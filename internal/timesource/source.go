// Package timesource provides the wall clock shown on the face, optionally
// corrected by an offset measured against a remote time authority.
package timesource

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Snapshot describes the sync state of a Source at a point in time.
type Snapshot struct {
	Offset              time.Duration
	UseLocal            bool
	LastSync            time.Time // local time of the last successful sync
	LastAttempt         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Synced reports whether the source currently applies a measured offset.
func (s Snapshot) Synced() bool {
	return !s.UseLocal && !s.LastSync.IsZero()
}

// Source returns local time plus the last measured offset. The sync loop
// writes to it from its own goroutine while the UI reads, so access is
// guarded by a mutex.
type Source struct {
	clock clockwork.Clock
	loc   *time.Location

	mu       sync.RWMutex
	snapshot Snapshot
}

// New creates a Source reading local time from clock in loc. Nil arguments
// fall back to the real clock and time.Local.
func New(clock clockwork.Clock, loc *time.Location) *Source {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Source{clock: clock, loc: loc}
}

// Now returns the corrected current instant, or raw local time while the
// use-local flag is set.
func (s *Source) Now() time.Time {
	local := s.Local()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot.UseLocal {
		return local
	}
	return local.Add(s.snapshot.Offset)
}

// Local returns the unadjusted local instant.
func (s *Source) Local() time.Time {
	return s.clock.Now().In(s.loc)
}

// Adjust records a successful sync: the offset becomes remote minus local
// time at receipt and the use-local flag is cleared. It returns the offset.
func (s *Source) Adjust(remote time.Time) time.Duration {
	local := s.clock.Now()
	offset := remote.Sub(local)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Offset = offset
	s.snapshot.UseLocal = false
	s.snapshot.LastSync = local
	s.snapshot.LastAttempt = local
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return offset
}

// Fallback records a failed sync. The previous offset is kept but ignored
// until the next successful Adjust.
func (s *Source) Fallback(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.UseLocal = true
	s.snapshot.LastAttempt = s.clock.Now()
	s.snapshot.LastError = err
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current sync state.
func (s *Source) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
