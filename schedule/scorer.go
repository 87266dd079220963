package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omriShneor/timewise/timeutil"
)

const (
	// BaseScore is where every slot starts before rules adjust it.
	BaseScore = 100.0

	// AdjacencyWindow is the edge-to-edge distance treated as back-to-back by
	// the consecutive-meeting rule. Distinct from DefaultConflictBuffer on
	// purpose; the two checks rank differently.
	AdjacencyWindow = 30 * time.Minute

	neutralRationale = "acceptable time with no strong signals either way"
)

// PatternHints is the slice of a learned productivity pattern the scorer
// consumes: hours and weekdays the subject historically meets on.
type PatternHints struct {
	FrequentHours   []int
	OptimalWeekdays []time.Weekday
}

// HasHour reports whether hour is one of the subject's frequent meeting hours.
func (h *PatternHints) HasHour(hour int) bool {
	if h == nil {
		return false
	}
	for _, ph := range h.FrequentHours {
		if ph == hour {
			return true
		}
	}
	return false
}

// HasWeekday reports whether wd is one of the subject's preferred weekdays.
func (h *PatternHints) HasWeekday(wd time.Weekday) bool {
	if h == nil {
		return false
	}
	for _, pd := range h.OptimalWeekdays {
		if pd == wd {
			return true
		}
	}
	return false
}

// ScoreInput is everything a scoring rule may look at.
type ScoreInput struct {
	Slot       TimeInterval
	Constraint Constraint
	Busy       []BusyEvent
	Hints      *PatternHints
}

// A scoringRule returns a score delta and a rationale fragment. A zero delta
// with an empty fragment means the rule did not fire. Rules are pure; order is
// fixed by the scoringRules table.
type scoringRule func(in ScoreInput) (float64, string)

var scoringRules = []scoringRule{
	preferredRangeRule,
	avoidRangeRule,
	bufferQualityRule,
	patternAffinityRule,
	consecutiveMeetingsRule,
	timeOfDayRule,
	weekdayRule,
}

// ScoreSlot folds the rule table over one candidate slot and produces a
// suggestion with the accumulated rationale. The score is clamped to [0, 100]
// and the rationale is never empty.
func ScoreSlot(in ScoreInput) Suggestion {
	score := BaseScore
	var fragments []string
	for _, rule := range scoringRules {
		delta, why := rule(in)
		score += delta
		if why != "" {
			fragments = append(fragments, why)
		}
	}

	rationale := strings.Join(fragments, "; ")
	if rationale == "" {
		rationale = neutralRationale
	}

	return Suggestion{
		ID:        uuid.New(),
		Slot:      in.Slot,
		Score:     clampScore(score),
		Conflicts: DetectConflicts(in.Slot, in.Busy, DefaultConflictBuffer),
		Rationale: rationale,
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func preferredRangeRule(in ScoreInput) (float64, string) {
	for _, r := range in.Constraint.PreferredRanges {
		if r.Contains(in.Slot) {
			return 20, "inside a preferred time range"
		}
	}
	return 0, ""
}

func avoidRangeRule(in ScoreInput) (float64, string) {
	for _, r := range in.Constraint.AvoidRanges {
		if r.Overlaps(in.Slot) {
			return -30, "overlaps a time range to avoid"
		}
	}
	return 0, ""
}

func bufferQualityRule(in ScoreInput) (float64, string) {
	before := in.Constraint.BufferBefore
	after := in.Constraint.BufferAfter
	if before <= 0 && after <= 0 {
		return 0, ""
	}

	beforeFree := before <= 0 || marginFree(in.Busy, TimeInterval{Start: in.Slot.Start.Add(-before), End: in.Slot.Start})
	afterFree := after <= 0 || marginFree(in.Busy, TimeInterval{Start: in.Slot.End, End: in.Slot.End.Add(after)})

	switch {
	case beforeFree && afterFree:
		return 15, "free buffer on both sides"
	case beforeFree || afterFree:
		return 8, "free buffer on one side"
	default:
		return 0, ""
	}
}

func marginFree(busy []BusyEvent, margin TimeInterval) bool {
	if !margin.Start.Before(margin.End) {
		return true
	}
	for _, ev := range busy {
		if ev.Interval.Overlaps(margin) {
			return false
		}
	}
	return true
}

func patternAffinityRule(in ScoreInput) (float64, string) {
	if in.Hints.HasHour(in.Slot.Start.Hour()) {
		return 10, "matches a frequent meeting hour"
	}
	return 0, ""
}

func consecutiveMeetingsRule(in ScoreInput) (float64, string) {
	count := CountAdjacent(in.Slot, in.Busy, AdjacencyWindow)
	if count <= 2 {
		return 0, ""
	}
	return float64(-5 * count), fmt.Sprintf("%d meetings back-to-back around this time", count)
}

// CountAdjacent counts same-day events within window of the slot, edge to
// edge. Overlapping events count as adjacent too.
func CountAdjacent(slot TimeInterval, busy []BusyEvent, window time.Duration) int {
	count := 0
	for _, ev := range busy {
		if !timeutil.SameDay(slot.Start, ev.Interval.Start) {
			continue
		}
		if adjacent(slot, ev.Interval, window) {
			count++
		}
	}
	return count
}

func adjacent(a, b TimeInterval, window time.Duration) bool {
	if a.Overlaps(b) {
		return true
	}
	if gap := b.Start.Sub(a.End); gap >= 0 && gap <= window {
		return true
	}
	if gap := a.Start.Sub(b.End); gap >= 0 && gap <= window {
		return true
	}
	return false
}

func timeOfDayRule(in ScoreInput) (float64, string) {
	switch in.Slot.Start.Hour() {
	case 14:
		return -5, "post-lunch dip"
	case 10:
		return 5, "mid-morning focus window"
	default:
		return 0, ""
	}
}

func weekdayRule(in ScoreInput) (float64, string) {
	switch in.Slot.Start.Weekday() {
	case time.Monday:
		return -3, "Monday start"
	case time.Friday:
		return -2, "Friday wind-down"
	default:
		return 0, ""
	}
}
