package face

import (
	"fmt"
	"time"
)

// Slot identifies one of the four digit positions on the clock face.
type Slot int

const (
	HoursTens Slot = iota
	HoursOnes
	MinutesTens
	MinutesOnes
)

// SlotCount is the number of digit cards on the face.
const SlotCount = 4

// Slots lists every slot in display order.
var Slots = [SlotCount]Slot{HoursTens, HoursOnes, MinutesTens, MinutesOnes}

// Element identifiers for the non-card labels.
const (
	PeriodID = "period"
	DateID   = "date"
)

// String returns the slot name as used in logs.
func (s Slot) String() string {
	switch s {
	case HoursTens:
		return "hoursTens"
	case HoursOnes:
		return "hoursOnes"
	case MinutesTens:
		return "minutesTens"
	case MinutesOnes:
		return "minutesOnes"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// ElementID returns the stable surface identifier of the slot's card.
func (s Slot) ElementID() string {
	switch s {
	case HoursTens:
		return "hours-tens"
	case HoursOnes:
		return "hours-ones"
	case MinutesTens:
		return "minutes-tens"
	case MinutesOnes:
		return "minutes-ones"
	default:
		return ""
	}
}

// CardIDs returns the element identifiers of all four cards in slot order.
func CardIDs() []string {
	ids := make([]string, 0, SlotCount)
	for _, s := range Slots {
		ids = append(ids, s.ElementID())
	}
	return ids
}

// Display holds the last committed digit of each slot. The zero value is the
// startup sentinel 00:00.
type Display [SlotCount]int

// Diff returns the slots whose digit differs between d and next, in slot order.
func (d Display) Diff(next Display) []Slot {
	var changed []Slot
	for _, s := range Slots {
		if d[s] != next[s] {
			changed = append(changed, s)
		}
	}
	return changed
}

// String renders the display as the four-character clock face.
func (d Display) String() string {
	return fmt.Sprintf("%d%d%d%d", d[HoursTens], d[HoursOnes], d[MinutesTens], d[MinutesOnes])
}

// Reading is everything the clock face shows for one instant.
type Reading struct {
	Digits Display
	Period string
	Date   string
}

// Extract converts t into 12-hour clock digits, an AM/PM period and a long
// date label. Calendar fields are read in t's location.
func Extract(t time.Time) Reading {
	hour := t.Hour()
	minute := t.Minute()

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}

	return Reading{
		Digits: Display{
			HoursTens:   h12 / 10,
			HoursOnes:   h12 % 10,
			MinutesTens: minute / 10,
			MinutesOnes: minute % 10,
		},
		Period: period,
		Date:   formatDate(t),
	}
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %d, %d", t.Weekday(), t.Month(), t.Day(), t.Year())
}
