package face

import (
	"reflect"
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 5, hour, minute, 0, 0, time.UTC)
}

func TestExtract_Boundaries(t *testing.T) {
	cases := []struct {
		name   string
		in     time.Time
		digits Display
		period string
	}{
		{"midnight", at(0, 0), Display{1, 2, 0, 0}, "AM"},
		{"one am", at(1, 5), Display{0, 1, 0, 5}, "AM"},
		{"before noon", at(11, 59), Display{1, 1, 5, 9}, "AM"},
		{"noon", at(12, 0), Display{1, 2, 0, 0}, "PM"},
		{"afternoon", at(13, 7), Display{0, 1, 0, 7}, "PM"},
		{"last minute", at(23, 59), Display{1, 1, 5, 9}, "PM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.in)
			if got.Digits != tc.digits {
				t.Fatalf("Digits = %v, want %v", got.Digits, tc.digits)
			}
			if got.Period != tc.period {
				t.Fatalf("Period = %q, want %q", got.Period, tc.period)
			}
		})
	}
}

func TestExtract_DigitsMatchTwelveHourClock(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			d := Extract(at(hour, minute)).Digits

			h12 := d[HoursTens]*10 + d[HoursOnes]
			want := hour % 12
			if want == 0 {
				want = 12
			}
			if h12 != want {
				t.Fatalf("%02d:%02d hour digits = %d, want %d", hour, minute, h12, want)
			}
			if m := d[MinutesTens]*10 + d[MinutesOnes]; m != minute {
				t.Fatalf("%02d:%02d minute digits = %d, want %d", hour, minute, m, minute)
			}
		}
	}
}

func TestExtract_DateLabel(t *testing.T) {
	got := Extract(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)).Date
	if got != "Tuesday, March 5, 2024" {
		t.Fatalf("Date = %q, want %q", got, "Tuesday, March 5, 2024")
	}

	got = Extract(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)).Date
	if got != "Sunday, December 31, 2023" {
		t.Fatalf("Date = %q, want %q", got, "Sunday, December 31, 2023")
	}
}

func TestExtract_UsesInstantLocation(t *testing.T) {
	utc := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)
	east := utc.In(time.FixedZone("UTC+3", 3*60*60))

	got := Extract(east)
	if got.Digits != (Display{0, 2, 3, 0}) || got.Period != "AM" {
		t.Fatalf("Extract(east) = %v %s, want 0230 AM", got.Digits, got.Period)
	}
	if got.Date != "Wednesday, March 6, 2024" {
		t.Fatalf("Date = %q, want next day in UTC+3", got.Date)
	}
}

func TestDisplayDiff(t *testing.T) {
	var zero Display
	if got := zero.Diff(zero); len(got) != 0 {
		t.Fatalf("Diff(same) = %v, want empty", got)
	}

	got := Display{1, 2, 0, 0}.Diff(Display{1, 2, 0, 1})
	if !reflect.DeepEqual(got, []Slot{MinutesOnes}) {
		t.Fatalf("Diff = %v, want [minutesOnes]", got)
	}

	got = Display{1, 2, 5, 9}.Diff(Display{0, 1, 0, 0})
	if !reflect.DeepEqual(got, []Slot{HoursTens, HoursOnes, MinutesTens, MinutesOnes}) {
		t.Fatalf("Diff = %v, want all slots", got)
	}
}

func TestSlotNames(t *testing.T) {
	want := []string{"hours-tens", "hours-ones", "minutes-tens", "minutes-ones"}
	if got := CardIDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("CardIDs() = %v, want %v", got, want)
	}
	if HoursTens.String() != "hoursTens" || MinutesOnes.String() != "minutesOnes" {
		t.Fatalf("unexpected slot names %q %q", HoursTens, MinutesOnes)
	}
	if Slot(7).ElementID() != "" {
		t.Fatalf("invalid slot should have empty element id")
	}
	if got := (Display{1, 2, 0, 5}).String(); got != "1205" {
		t.Fatalf("Display.String() = %q, want 1205", got)
	}
}
