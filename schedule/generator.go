package schedule

import (
	"time"

	"github.com/omriShneor/timewise/timeutil"
)

// DefaultGranularity is the slot alignment grid.
const DefaultGranularity = 30 * time.Minute

// GeneratorConfig bounds candidate generation. The generator never looks at
// busy events; filtering is the conflict detector's job.
type GeneratorConfig struct {
	WorkingHours    timeutil.WorkingHours
	ExcludeWeekends bool
	Granularity     time.Duration // defaults to DefaultGranularity
}

// SlotIterator lazily walks candidate slots in start-time order. It is
// finite and non-restartable; a request consumes it exactly once.
type SlotIterator struct {
	duration        time.Duration
	granularity     time.Duration
	wh              timeutil.WorkingHours
	excludeWeekends bool
	horizonEnd      time.Time
	cursor          time.Time
	done            bool
}

// GenerateSlots enumerates candidates of exactly constraint.Duration aligned
// to the granularity grid, wholly inside the working-hours window of each day
// between horizonStart and horizonStart+horizonDays.
func GenerateSlots(constraint Constraint, horizonStart time.Time, horizonDays int, cfg GeneratorConfig) (*SlotIterator, error) {
	if err := constraint.Validate(); err != nil {
		return nil, err
	}

	gran := cfg.Granularity
	if gran <= 0 {
		gran = DefaultGranularity
	}

	it := &SlotIterator{
		duration:        constraint.Duration,
		granularity:     gran,
		wh:              cfg.WorkingHours,
		excludeWeekends: cfg.ExcludeWeekends,
		horizonEnd:      horizonStart.AddDate(0, 0, horizonDays),
	}
	it.cursor = it.align(horizonStart)

	// A window too short for the duration contributes nothing; same for an
	// inverted window or an empty horizon. Not an error, just no slots.
	if !cfg.WorkingHours.Valid() || horizonDays <= 0 || cfg.WorkingHours.Span() < constraint.Duration {
		it.done = true
	}
	return it, nil
}

// Next returns the next candidate and false once the horizon is exhausted.
func (it *SlotIterator) Next() (TimeInterval, bool) {
	for !it.done {
		if it.cursor.Add(it.duration).After(it.horizonEnd) {
			it.done = true
			break
		}
		if it.excludeWeekends && timeutil.IsWeekend(it.cursor) {
			it.advanceDay()
			continue
		}

		dayStart := it.wh.Start.At(it.cursor)
		dayEnd := it.wh.End.At(it.cursor)
		if it.cursor.Before(dayStart) {
			it.cursor = it.align(dayStart)
			continue
		}
		if it.cursor.Add(it.duration).After(dayEnd) {
			it.advanceDay()
			continue
		}

		slot := TimeInterval{Start: it.cursor, End: it.cursor.Add(it.duration)}
		it.cursor = it.cursor.Add(it.granularity)
		return slot, true
	}
	return TimeInterval{}, false
}

// Collect drains the iterator into a slice.
func (it *SlotIterator) Collect() []TimeInterval {
	var slots []TimeInterval
	for {
		slot, ok := it.Next()
		if !ok {
			return slots
		}
		slots = append(slots, slot)
	}
}

func (it *SlotIterator) advanceDay() {
	next := time.Date(it.cursor.Year(), it.cursor.Month(), it.cursor.Day()+1, 0, 0, 0, 0, it.cursor.Location())
	it.cursor = it.align(it.wh.Start.At(next))
}

// align rounds t up to the next granularity boundary counted from midnight.
func (it *SlotIterator) align(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := t.Sub(midnight)
	if rem := offset % it.granularity; rem != 0 {
		offset += it.granularity - rem
	}
	return midnight.Add(offset)
}
