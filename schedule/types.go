package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeInterval is a half-open [Start, End) span. Construct via NewInterval so
// the Start < End invariant holds everywhere downstream.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewInterval validates and builds a TimeInterval.
func NewInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Duration returns the interval length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether the two intervals share any time.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Contains reports whether other lies entirely within iv.
func (iv TimeInterval) Contains(other TimeInterval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

func (iv TimeInterval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format("2006-01-02 15:04"), iv.End.Format("15:04"))
}

// Constraint describes what the caller is asking for. It is produced by the
// intent-parsing collaborator and is read-only to the engine.
type Constraint struct {
	Duration        time.Duration
	PreferredRanges []TimeInterval
	AvoidRanges     []TimeInterval
	BufferBefore    time.Duration
	BufferAfter     time.Duration
}

// Validate rejects constraints the engine cannot score meaningfully.
func (c Constraint) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConstraint, c.Duration)
	}
	if c.BufferBefore < 0 || c.BufferAfter < 0 {
		return fmt.Errorf("%w: buffers must be non-negative", ErrInvalidConstraint)
	}
	for _, r := range append(append([]TimeInterval{}, c.PreferredRanges...), c.AvoidRanges...) {
		if !r.Start.Before(r.End) {
			return fmt.Errorf("%w: range %s is inverted or empty", ErrInvalidInterval, r)
		}
	}
	return nil
}

// BusyEvent is one already-scheduled item for one participant, supplied by the
// calendar-provider collaborator. The engine never mutates it.
type BusyEvent struct {
	ID       string
	Title    string
	Interval TimeInterval
	Location string
}

// ConflictType distinguishes a hard overlap from a too-close neighbor.
type ConflictType string

const (
	ConflictOverlap ConflictType = "overlap"
	ConflictBuffer  ConflictType = "buffer"
)

// Severity of a detected conflict.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Conflict records why a candidate slot collides with an existing event.
type Conflict struct {
	EventID    string
	EventTitle string
	Type       ConflictType
	Severity   Severity
}

// Suggestion is one ranked proposal returned to the caller. Rationale is
// accumulated across scoring rules and is never empty.
type Suggestion struct {
	ID        uuid.UUID
	Slot      TimeInterval
	Score     float64
	Conflicts []Conflict
	Rationale string
}
