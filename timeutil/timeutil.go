package timeutil

import (
	"fmt"
	"time"
)

var defaultLocation = time.UTC

// ResolveLocation returns the location for an IANA zone name with UTC fallback.
func ResolveLocation(timezone string) (*time.Location, bool) {
	if timezone == "" {
		return defaultLocation, true
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return defaultLocation, true
	}
	return loc, false
}

// Clock is a time of day without a date, e.g. 09:30.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string (24-hour clock).
func ParseClock(value string) (Clock, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return Clock{}, fmt.Errorf("unable to parse clock time: %s", value)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustClock is ParseClock for static tables; panics on malformed input.
func MustClock(value string) Clock {
	c, err := ParseClock(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns minutes from midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ClockFromMinutes converts minutes from midnight back to a Clock.
// Values outside a single day are wrapped.
func ClockFromMinutes(mins int) Clock {
	mins = ((mins % 1440) + 1440) % 1440
	return Clock{Hour: mins / 60, Minute: mins % 60}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockOf extracts the time of day from t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// At anchors the clock time on the date of day.
func (c Clock) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// WorkingHours is a daily window, e.g. 09:00-18:00. Start must precede End.
type WorkingHours struct {
	Start Clock
	End   Clock
}

// Span returns the window length.
func (w WorkingHours) Span() time.Duration {
	return time.Duration(w.End.Minutes()-w.Start.Minutes()) * time.Minute
}

// Valid reports whether the window is non-inverted and non-empty.
func (w WorkingHours) Valid() bool {
	return w.Start.Minutes() < w.End.Minutes()
}

// Shift moves both edges by delta minutes, clamping to the containing day.
func (w WorkingHours) Shift(deltaMinutes int) WorkingHours {
	start := w.Start.Minutes() + deltaMinutes
	end := w.End.Minutes() + deltaMinutes
	if start < 0 {
		start = 0
	}
	if end > 1440 {
		end = 1440
	}
	// End may legitimately land on 24:00, which ClockFromMinutes would wrap.
	return WorkingHours{
		Start: ClockFromMinutes(start),
		End:   Clock{Hour: end / 60, Minute: end % 60},
	}
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameDay reports whether a and b share a calendar date in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
