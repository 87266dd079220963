// Package pattern derives a lightweight usage profile from a caller-supplied
// event history. Profiles are a scoring bias, never ground truth, and are
// rebuilt on demand; the store only memoizes them for a fixed TTL.
package pattern

import (
	"fmt"
	"sort"
	"time"

	"github.com/omriShneor/timewise/meeting"
	"github.com/omriShneor/timewise/schedule"
)

const (
	// MinHistoryEvents is the floor below which no signal is extracted.
	MinHistoryEvents = 5

	// fatigueEventThreshold: an hour bucket holding more events than this
	// becomes a fatigue band.
	fatigueEventThreshold = 3

	productiveHourCount = 3
	sluggishHourCount   = 2
	optimalWeekdayCount = 3
)

// Profile is a per-subject productivity pattern.
type Profile struct {
	SubjectID             string
	MostProductiveHours   []int
	LeastProductiveHours  []int
	OptimalWeekdays       []time.Weekday
	FatigueTimeBands      []string // "HH:00"
	AvgDurationByCategory map[meeting.Type]time.Duration
	LearnedAt             time.Time
}

// Hints exposes the slice of the profile the slot scorer consumes.
func (p Profile) Hints() *schedule.PatternHints {
	if len(p.MostProductiveHours) == 0 && len(p.OptimalWeekdays) == 0 {
		return nil
	}
	return &schedule.PatternHints{
		FrequentHours:   p.MostProductiveHours,
		OptimalWeekdays: p.OptimalWeekdays,
	}
}

// Learn builds a profile from historical events. Fewer than MinHistoryEvents
// events produce a neutral profile rather than spurious signal.
func Learn(subjectID string, history []schedule.BusyEvent) Profile {
	profile := Profile{
		SubjectID:             subjectID,
		AvgDurationByCategory: make(map[meeting.Type]time.Duration),
		LearnedAt:             time.Now(),
	}
	if len(history) < MinHistoryEvents {
		return profile
	}

	hourCounts := make(map[int]int)
	weekdayCounts := make(map[time.Weekday]int)
	categoryTotals := make(map[meeting.Type]time.Duration)
	categoryCounts := make(map[meeting.Type]int)

	for _, ev := range history {
		hourCounts[ev.Interval.Start.Hour()]++
		weekdayCounts[ev.Interval.Start.Weekday()]++

		category := meeting.Classify(ev.Title)
		categoryTotals[category] += ev.Interval.Duration()
		categoryCounts[category]++
	}

	byFrequency := rankHours(hourCounts)
	profile.MostProductiveHours = topHours(byFrequency, productiveHourCount)
	profile.LeastProductiveHours = bottomHours(byFrequency, sluggishHourCount)
	profile.OptimalWeekdays = topWeekdays(weekdayCounts, optimalWeekdayCount)

	for hour, count := range hourCounts {
		if count > fatigueEventThreshold {
			profile.FatigueTimeBands = append(profile.FatigueTimeBands, fmt.Sprintf("%02d:00", hour))
		}
	}
	sort.Strings(profile.FatigueTimeBands)

	for category, total := range categoryTotals {
		profile.AvgDurationByCategory[category] = total / time.Duration(categoryCounts[category])
	}

	return profile
}

type hourCount struct {
	hour  int
	count int
}

// rankHours orders occupied hour buckets by frequency descending, hour
// ascending on ties, so learning stays deterministic.
func rankHours(counts map[int]int) []hourCount {
	ranked := make([]hourCount, 0, len(counts))
	for hour, count := range counts {
		ranked = append(ranked, hourCount{hour: hour, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].hour < ranked[j].hour
	})
	return ranked
}

func topHours(ranked []hourCount, n int) []int {
	if n > len(ranked) {
		n = len(ranked)
	}
	hours := make([]int, 0, n)
	for _, hc := range ranked[:n] {
		hours = append(hours, hc.hour)
	}
	sort.Ints(hours)
	return hours
}

func bottomHours(ranked []hourCount, n int) []int {
	if n > len(ranked) {
		n = len(ranked)
	}
	hours := make([]int, 0, n)
	for _, hc := range ranked[len(ranked)-n:] {
		hours = append(hours, hc.hour)
	}
	sort.Ints(hours)
	return hours
}

func topWeekdays(counts map[time.Weekday]int, n int) []time.Weekday {
	type weekdayCount struct {
		day   time.Weekday
		count int
	}
	ranked := make([]weekdayCount, 0, len(counts))
	for day, count := range counts {
		ranked = append(ranked, weekdayCount{day: day, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].day < ranked[j].day
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	days := make([]time.Weekday, 0, n)
	for _, wc := range ranked[:n] {
		days = append(days, wc.day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
