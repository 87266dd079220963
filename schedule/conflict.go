package schedule

import "time"

// DefaultConflictBuffer is the proximity window flagged as a medium-severity
// conflict. It is deliberately distinct from the 30-minute adjacency window
// the consecutive-meeting scoring rule uses.
const DefaultConflictBuffer = 15 * time.Minute

// Overlaps reports whether a and b share any time. Symmetric.
func Overlaps(a, b TimeInterval) bool {
	return a.Overlaps(b)
}

// WithinBuffer reports whether the gap between a and b is positive and at
// most buffer, in either direction. Touching or overlapping intervals have no
// gap and are not buffer conflicts.
func WithinBuffer(a, b TimeInterval, buffer time.Duration) bool {
	if buffer <= 0 {
		return false
	}
	if gap := b.Start.Sub(a.End); gap > 0 && gap <= buffer {
		return true
	}
	if gap := a.Start.Sub(b.End); gap > 0 && gap <= buffer {
		return true
	}
	return false
}

// DetectConflicts reports every busy event that overlaps the candidate (high
// severity) or sits within buffer of it (medium severity). An event
// contributes at most one entry; overlap wins over proximity.
func DetectConflicts(candidate TimeInterval, busy []BusyEvent, buffer time.Duration) []Conflict {
	var conflicts []Conflict
	for _, ev := range busy {
		switch {
		case Overlaps(candidate, ev.Interval):
			conflicts = append(conflicts, Conflict{
				EventID:    ev.ID,
				EventTitle: ev.Title,
				Type:       ConflictOverlap,
				Severity:   SeverityHigh,
			})
		case WithinBuffer(candidate, ev.Interval, buffer):
			conflicts = append(conflicts, Conflict{
				EventID:    ev.ID,
				EventTitle: ev.Title,
				Type:       ConflictBuffer,
				Severity:   SeverityMedium,
			})
		}
	}
	return conflicts
}

// HasOverlap reports whether any detected conflict is a hard overlap.
func HasOverlap(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Type == ConflictOverlap {
			return true
		}
	}
	return false
}
