package face

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/five82/flipclock/internal/flip"
	"github.com/five82/flipclock/internal/surface"
)

// TimeSource yields the instant shown on the face.
type TimeSource interface {
	Now() time.Time
}

// LoopOption customises a Loop.
type LoopOption func(*loopOptions)

type loopOptions struct {
	clock        clockwork.Clock
	flipDuration time.Duration
}

// WithClock sets the clock that times flip animations.
func WithClock(c clockwork.Clock) LoopOption {
	return func(o *loopOptions) {
		o.clock = c
	}
}

// WithFlipDuration sets how long each flip lasts.
func WithFlipDuration(d time.Duration) LoopOption {
	return func(o *loopOptions) {
		o.flipDuration = d
	}
}

// Loop diffs the current time against the displayed digits and flips the
// cards that changed. It is driven from a single event loop and is not safe
// for concurrent use.
type Loop struct {
	source  TimeSource
	display Display
	cards   [SlotCount]*flip.Animator
	period  surface.Label
	date    surface.Label
}

// NewLoop binds every card and label on surf. A missing element is fatal:
// the face cannot run without all of them.
func NewLoop(source TimeSource, surf surface.Surface, opts ...LoopOption) (*Loop, error) {
	if source == nil {
		return nil, fmt.Errorf("clock loop requires a time source")
	}
	o := loopOptions{flipDuration: flip.DefaultDuration}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Loop{source: source}
	for _, s := range Slots {
		card, err := surface.RequireCard(surf, s.ElementID())
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", s, err)
		}
		l.cards[s] = flip.New(card, o.clock, o.flipDuration)
	}

	var err error
	if l.period, err = surface.RequireLabel(surf, PeriodID); err != nil {
		return nil, fmt.Errorf("bind period: %w", err)
	}
	if l.date, err = surface.RequireLabel(surf, DateID); err != nil {
		return nil, fmt.Errorf("bind date: %w", err)
	}
	return l, nil
}

// Tick reads the time source, starts a flip for every changed slot, commits
// those slots and rewrites the period and date labels. It returns the slots
// that changed.
func (l *Loop) Tick() []Slot {
	reading := Extract(l.source.Now())

	changed := l.display.Diff(reading.Digits)
	for _, s := range changed {
		l.cards[s].Animate(reading.Digits[s])
		l.display[s] = reading.Digits[s]
	}

	l.period.SetText(reading.Period)
	l.date.SetText(reading.Date)
	return changed
}

// Settle completes every flip whose deadline has passed and returns how many
// cards settled.
func (l *Loop) Settle() int {
	settled := 0
	for _, a := range l.cards {
		if a.Settle() {
			settled++
		}
	}
	return settled
}

// NextDeadline returns the earliest pending flip completion.
func (l *Loop) NextDeadline() (time.Time, bool) {
	var next time.Time
	found := false
	for _, a := range l.cards {
		d, ok := a.Deadline()
		if !ok {
			continue
		}
		if !found || d.Before(next) {
			next = d
			found = true
		}
	}
	return next, found
}

// Display returns the committed digits.
func (l *Loop) Display() Display {
	return l.display
}

// SlotState returns the animation state of a slot.
func (l *Loop) SlotState(s Slot) flip.State {
	if s < 0 || int(s) >= SlotCount {
		return flip.Idle
	}
	return l.cards[s].State()
}
