package schedule

import "sort"

// AvailabilityIndex answers free/busy questions per participant. Busy
// intervals are merged up front so lookups stay cheap for both the single-user
// and team paths.
type AvailabilityIndex struct {
	events map[string][]BusyEvent
	merged map[string][]TimeInterval
}

// NewAvailabilityIndex builds an index from per-participant busy events. The
// input map is read, never mutated.
func NewAvailabilityIndex(perParticipant map[string][]BusyEvent) *AvailabilityIndex {
	ix := &AvailabilityIndex{
		events: make(map[string][]BusyEvent, len(perParticipant)),
		merged: make(map[string][]TimeInterval, len(perParticipant)),
	}
	for id, events := range perParticipant {
		copied := make([]BusyEvent, len(events))
		copy(copied, events)
		sort.SliceStable(copied, func(i, j int) bool {
			return copied[i].Interval.Start.Before(copied[j].Interval.Start)
		})
		ix.events[id] = copied

		intervals := make([]TimeInterval, len(copied))
		for i, ev := range copied {
			intervals[i] = ev.Interval
		}
		ix.merged[id] = MergeIntervals(intervals)
	}
	return ix
}

// Participants returns all indexed participant IDs in stable order.
func (ix *AvailabilityIndex) Participants() []string {
	ids := make([]string, 0, len(ix.events))
	for id := range ix.events {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BusyFor returns the participant's events sorted by start time.
func (ix *AvailabilityIndex) BusyFor(participantID string) []BusyEvent {
	return ix.events[participantID]
}

// BusyIntervals returns the participant's merged busy intervals.
func (ix *AvailabilityIndex) BusyIntervals(participantID string) []TimeInterval {
	return ix.merged[participantID]
}

// IsFree reports whether the interval avoids every busy interval of the
// participant. Unknown participants have an empty calendar and are free.
func (ix *AvailabilityIndex) IsFree(participantID string, iv TimeInterval) bool {
	for _, busy := range ix.merged[participantID] {
		if busy.Overlaps(iv) {
			return false
		}
		if !busy.Start.Before(iv.End) {
			break
		}
	}
	return true
}

// AllEvents flattens every participant's events into one list, ordered by
// participant then start time.
func (ix *AvailabilityIndex) AllEvents() []BusyEvent {
	var all []BusyEvent
	for _, id := range ix.Participants() {
		all = append(all, ix.events[id]...)
	}
	return all
}

// MergeIntervals coalesces overlapping or touching intervals into a minimal
// sorted set.
func MergeIntervals(intervals []TimeInterval) []TimeInterval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]TimeInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []TimeInterval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}
