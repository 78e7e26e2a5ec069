// Package surface defines the display boundary the clock core writes to and
// an in-memory board implementation the terminal UI renders from.
package surface

import (
	"errors"
	"fmt"
)

// Region names one of the four text areas of a flip card.
type Region int

const (
	FrontTop Region = iota
	FrontBottom
	BackTop
	BackBottom
)

// RegionCount is the number of text regions on a card.
const RegionCount = 4

func (r Region) String() string {
	switch r {
	case FrontTop:
		return "front-top"
	case FrontBottom:
		return "front-bottom"
	case BackTop:
		return "back-top"
	case BackBottom:
		return "back-bottom"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// Card is one animatable digit card.
type Card interface {
	SetText(region Region, text string)
	SetFlipping(on bool)
}

// Label is a plain text element.
type Label interface {
	SetText(text string)
}

// Surface resolves elements by their stable identifier.
type Surface interface {
	Card(id string) (Card, bool)
	Label(id string) (Label, bool)
}

// ErrMissingElement is returned when a required element is not on the surface.
var ErrMissingElement = errors.New("surface: missing element")

// RequireCard looks up a card and fails when it is absent.
func RequireCard(s Surface, id string) (Card, error) {
	if s == nil {
		return nil, fmt.Errorf("card %q: %w", id, ErrMissingElement)
	}
	card, ok := s.Card(id)
	if !ok || card == nil {
		return nil, fmt.Errorf("card %q: %w", id, ErrMissingElement)
	}
	return card, nil
}

// RequireLabel looks up a label and fails when it is absent.
func RequireLabel(s Surface, id string) (Label, error) {
	if s == nil {
		return nil, fmt.Errorf("label %q: %w", id, ErrMissingElement)
	}
	label, ok := s.Label(id)
	if !ok || label == nil {
		return nil, fmt.Errorf("label %q: %w", id, ErrMissingElement)
	}
	return label, nil
}
