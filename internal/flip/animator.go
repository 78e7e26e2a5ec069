// Package flip drives the two-phase flip transition of a single digit card.
package flip

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/five82/flipclock/internal/surface"
)

// DefaultDuration is how long a card stays flipping before the front face
// catches up with the new digit.
const DefaultDuration = 600 * time.Millisecond

// State is the animation state of a card.
//
//	         Animate()
//	Idle ──────────────► Flipping ─┐
//	  ▲                     │  ▲   │ Animate() restarts the deadline
//	  │  Settle() after     │  └───┘
//	  └──── deadline ───────┘
type State int

const (
	Idle State = iota
	Flipping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Flipping:
		return "flipping"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animator owns the flip state of one card.
type Animator struct {
	card     surface.Card
	clock    clockwork.Clock
	duration time.Duration

	state    State
	pending  string
	deadline time.Time
}

// New binds an animator to card. A nil clock uses the real clock and a
// non-positive duration uses DefaultDuration.
func New(card surface.Card, clock clockwork.Clock, duration time.Duration) *Animator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Animator{card: card, clock: clock, duration: duration}
}

// Animate reveals digit on the back face and starts the flip. Calling it
// while a flip is in progress overrides the pending digit and restarts the
// deadline, so the card always settles on the latest value.
func (a *Animator) Animate(digit int) {
	text := strconv.Itoa(digit)
	a.card.SetText(surface.BackTop, text)
	a.card.SetText(surface.BackBottom, text)
	a.card.SetFlipping(true)

	a.state = Flipping
	a.pending = text
	a.deadline = a.clock.Now().Add(a.duration)
}

// Settle completes the flip once its deadline has passed. It reports whether
// the card transitioned back to Idle.
func (a *Animator) Settle() bool {
	if a.state != Flipping {
		return false
	}
	if a.clock.Now().Before(a.deadline) {
		return false
	}
	a.card.SetText(surface.FrontTop, a.pending)
	a.card.SetText(surface.FrontBottom, a.pending)
	a.card.SetFlipping(false)
	a.state = Idle
	return true
}

// State returns the current animation state.
func (a *Animator) State() State {
	return a.state
}

// Deadline returns when the in-progress flip completes. ok is false while idle.
func (a *Animator) Deadline() (deadline time.Time, ok bool) {
	if a.state != Flipping {
		return time.Time{}, false
	}
	return a.deadline, true
}
