// Package team schedules meetings across multiple participants: it reconciles
// working hours over time zones, checks per-member availability, and ranks
// candidate slots by a coverage-weighted efficiency score.
package team

import (
	"time"

	"github.com/google/uuid"

	"github.com/omriShneor/timewise/meeting"
	"github.com/omriShneor/timewise/schedule"
	"github.com/omriShneor/timewise/timeutil"
)

// Priority determines how a member's conflicts weigh on a slot.
type Priority string

const (
	// PriorityRequired members veto slots they cannot attend.
	PriorityRequired Priority = "required"
	// PriorityOptional members are marked tentative when they conflict.
	PriorityOptional Priority = "optional"
	// PriorityInformational members never affect the outcome.
	PriorityInformational Priority = "informational"
)

// Member is one meeting participant.
type Member struct {
	ID           string
	Email        string
	Priority     Priority
	TimeZone     string // IANA-style name looked up in the static offset table
	WorkingHours timeutil.WorkingHours
}

// Availability is a member's status for one candidate slot.
type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	Tentative Availability = "tentative"
)

// MemberAvailability pairs a member with their status for a slot.
type MemberAvailability struct {
	MemberID  string
	Status    Availability
	Conflicts []schedule.Conflict
}

// Request describes the meeting to place.
type Request struct {
	Title      string
	Category   meeting.Type
	Constraint schedule.Constraint
	Members    []Member

	// HorizonStart defaults to now; Deadline, when set, shortens the search
	// horizon but never extends it.
	HorizonStart time.Time
	Deadline     time.Time

	// OrganizerTimeZone anchors the reference frame for window intersection.
	// Defaults to the first required member's zone.
	OrganizerTimeZone string
}

// Task is a preparation or follow-up item with a due time relative to the
// suggested slot.
type Task struct {
	Description string
	Due         time.Time
}

// Suggestion is one ranked team proposal.
type Suggestion struct {
	ID                 uuid.UUID
	Slot               schedule.TimeInterval
	Score              float64
	EfficiencyScore    float64
	AttendanceCoverage float64 // 0..1 over required members
	Availability       []MemberAvailability
	Rationale          string
	Preparation        []Task
	FollowUp           []Task
}

// Report summarizes a scheduling run for the response-formatting layer.
type Report struct {
	GeneratedAt       time.Time
	TotalConflicts    int
	AverageCoverage   float64
	DistinctTimeZones int
	NeedsPreparation  bool
	NeedsFollowUp     bool
	Recommendations   []string
}

// Result bundles the ranked suggestions with the analysis report.
type Result struct {
	Suggestions []Suggestion
	Report      Report
}
