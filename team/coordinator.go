package team

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/omriShneor/timewise/meeting"
	"github.com/omriShneor/timewise/schedule"
)

const (
	// DefaultHorizonDays bounds the team search window.
	DefaultHorizonDays = 14

	// DefaultTopSuggestions is how many ranked proposals a run returns.
	DefaultTopSuggestions = 5

	// Comfortable local hours; a member whose local start falls outside this
	// band costs the slot points.
	comfortStartMinutes = 7 * 60
	comfortEndMinutes   = 20 * 60

	idealStartBonus        = 15.0
	productiveWeekdayBonus = 5.0
	discomfortPenalty      = 10.0

	// More members than this with back-to-back meetings around the slot
	// triggers the team adjacency penalty.
	adjacentMemberThreshold = 2
)

// efficiencyWeights scales the blended score per category.
var efficiencyWeights = map[meeting.Type]float64{
	meeting.Standup:    1.1,
	meeting.Planning:   1.3,
	meeting.Review:     1.2,
	meeting.Brainstorm: 1.4,
	meeting.OneOnOne:   1.0,
	meeting.AllHands:   1.5,
	meeting.Workshop:   1.6,
	meeting.Social:     0.9,
	meeting.General:    1.0,
}

// Config tunes a Coordinator. Zero values select defaults.
type Config struct {
	HorizonDays int
	TopK        int
	Granularity time.Duration
	Parallelism int
}

// Coordinator runs the multi-participant scheduling path.
type Coordinator struct {
	cfg Config
}

// NewCoordinator creates a coordinator, filling config defaults.
func NewCoordinator(cfg Config) *Coordinator {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopSuggestions
	}
	if cfg.Granularity <= 0 {
		cfg.Granularity = schedule.DefaultGranularity
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	return &Coordinator{cfg: cfg}
}

// slotEval is the per-slot evaluation before ranking.
type slotEval struct {
	slot         schedule.TimeInterval
	availability []MemberAvailability
	coverage     float64
	score        float64
	efficiency   float64
	rationale    string
	viable       bool
}

// ScheduleMeeting searches the common window for slots, checks every
// member's calendar, and returns the top suggestions plus an analysis report.
// Fully booked teams and zero-member requests yield empty-but-valid results.
func (c *Coordinator) ScheduleMeeting(ctx context.Context, req Request, events map[string][]schedule.BusyEvent, hints *schedule.PatternHints) (*Result, error) {
	if err := req.Constraint.Validate(); err != nil {
		return nil, fmt.Errorf("team scheduling request rejected: %w", err)
	}

	profile := meeting.ProfileFor(req.Category)

	if len(req.Members) == 0 {
		return &Result{Report: Report{
			GeneratedAt:      time.Now(),
			NeedsPreparation: profile.NeedsPreparation,
			NeedsFollowUp:    profile.NeedsFollowUp,
			Recommendations:  []string{"No participants were provided; add at least one required attendee."},
		}}, nil
	}

	required, optional := partitionMembers(req.Members)
	attendees := append(append([]Member{}, required...), optional...)

	refZone := req.OrganizerTimeZone
	if refZone == "" && len(required) > 0 {
		refZone = required[0].TimeZone
	}
	if refZone == "" {
		refZone = req.Members[0].TimeZone
	}

	window := CommonWindow(required, refZone)

	start := req.HorizonStart
	if start.IsZero() {
		start = time.Now()
	}
	days := c.horizonDaysFor(start, req.Deadline)

	iter, err := schedule.GenerateSlots(req.Constraint, start, days, schedule.GeneratorConfig{
		WorkingHours:    window,
		ExcludeWeekends: true,
		Granularity:     c.cfg.Granularity,
	})
	if err != nil {
		return nil, fmt.Errorf("team scheduling request rejected: %w", err)
	}
	slots := iter.Collect()

	ix := schedule.NewAvailabilityIndex(events)
	aggregate := ix.AllEvents()

	// Slots are independent; evaluate them on a striped worker pool and keep
	// results index-addressed so ranking stays deterministic.
	evals := make([]slotEval, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	workers := c.cfg.Parallelism
	if workers > len(slots) && len(slots) > 0 {
		workers = len(slots)
	}
	for w := 0; w < workers; w++ {
		offset := w
		g.Go(func() error {
			for i := offset; i < len(slots); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				evals[i] = c.evaluateSlot(slots[i], req, attendees, required, ix, aggregate, hints, profile, refZone)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	viable := make([]slotEval, 0, len(evals))
	for _, ev := range evals {
		if ev.viable {
			viable = append(viable, ev)
		}
	}
	sort.SliceStable(viable, func(i, j int) bool {
		if viable[i].efficiency != viable[j].efficiency {
			return viable[i].efficiency > viable[j].efficiency
		}
		return viable[i].slot.Start.Before(viable[j].slot.Start)
	})
	if len(viable) > c.cfg.TopK {
		viable = viable[:c.cfg.TopK]
	}

	suggestions := make([]Suggestion, 0, len(viable))
	for _, ev := range viable {
		suggestions = append(suggestions, Suggestion{
			ID:                 uuid.New(),
			Slot:               ev.slot,
			Score:              ev.score,
			EfficiencyScore:    ev.efficiency,
			AttendanceCoverage: ev.coverage,
			Availability:       ev.availability,
			Rationale:          ev.rationale,
			Preparation:        preparationTasks(profile, ev.slot),
			FollowUp:           followUpTasks(profile, ev.slot),
		})
	}

	return &Result{
		Suggestions: suggestions,
		Report:      buildReport(suggestions, req.Members, profile),
	}, nil
}

func (c *Coordinator) horizonDaysFor(start time.Time, deadline time.Time) int {
	days := c.cfg.HorizonDays
	if deadline.IsZero() {
		return days
	}
	until := int(math.Ceil(deadline.Sub(start).Hours() / 24))
	if until < days {
		days = until
	}
	if days < 0 {
		days = 0
	}
	return days
}

func (c *Coordinator) evaluateSlot(
	slot schedule.TimeInterval,
	req Request,
	attendees, required []Member,
	ix *schedule.AvailabilityIndex,
	aggregate []schedule.BusyEvent,
	hints *schedule.PatternHints,
	profile meeting.Profile,
	refZone string,
) slotEval {
	eval := slotEval{slot: slot}

	availableRequired := 0
	for _, m := range attendees {
		conflicts := schedule.DetectConflicts(slot, ix.BusyFor(m.ID), schedule.DefaultConflictBuffer)
		status := Available
		if schedule.HasOverlap(conflicts) {
			if m.Priority == PriorityRequired {
				status = Busy
			} else {
				status = Tentative
			}
		}
		if m.Priority == PriorityRequired && status == Available {
			availableRequired++
		}
		eval.availability = append(eval.availability, MemberAvailability{
			MemberID:  m.ID,
			Status:    status,
			Conflicts: conflicts,
		})
	}

	eval.coverage = 1.0
	if len(required) > 0 {
		eval.coverage = float64(availableRequired) / float64(len(required))
	}
	eval.viable = len(required) == 0 || availableRequired > 0
	if !eval.viable {
		return eval
	}

	base := schedule.ScoreSlot(schedule.ScoreInput{
		Slot:       slot,
		Constraint: req.Constraint,
		Busy:       aggregate,
		Hints:      hints,
	})
	score := base.Score * eval.coverage
	fragments := []string{base.Rationale}
	if availableRequired < len(required) {
		fragments = append(fragments, fmt.Sprintf("%d of %d required members available", availableRequired, len(required)))
	}

	if containsClock(profile.IdealStartTimes, slot.Start.Format("15:04")) {
		score += idealStartBonus
		fragments = append(fragments, fmt.Sprintf("ideal start time for a %s", req.Category))
	}
	if hints.HasWeekday(slot.Start.Weekday()) {
		score += productiveWeekdayBonus
		fragments = append(fragments, "matches a productive weekday")
	}

	if uncomfortable := c.countUncomfortable(slot, attendees, refZone); uncomfortable > 0 {
		score -= discomfortPenalty * float64(uncomfortable)
		fragments = append(fragments, fmt.Sprintf("%d members outside comfortable local hours", uncomfortable))
	}

	if crowded := countAdjacentMembers(slot, attendees, ix); crowded > adjacentMemberThreshold {
		score -= 5 * float64(crowded)
		fragments = append(fragments, fmt.Sprintf("%d members already have back-to-back meetings nearby", crowded))
	}

	eval.score = clamp(score)
	eval.efficiency = efficiencyScore(eval.score, eval.coverage, req.Category)
	eval.rationale = strings.Join(fragments, "; ")
	return eval
}

// countUncomfortable counts members whose local clock at the slot start falls
// outside the 07:00-20:00 comfort band, per the static offset table.
func (c *Coordinator) countUncomfortable(slot schedule.TimeInterval, attendees []Member, refZone string) int {
	refMinutes := slot.Start.Hour()*60 + slot.Start.Minute()
	count := 0
	for _, m := range attendees {
		local := refMinutes + relativeOffset(m.TimeZone, refZone)
		local = ((local % 1440) + 1440) % 1440
		if local < comfortStartMinutes || local >= comfortEndMinutes {
			count++
		}
	}
	return count
}

func countAdjacentMembers(slot schedule.TimeInterval, attendees []Member, ix *schedule.AvailabilityIndex) int {
	count := 0
	for _, m := range attendees {
		if schedule.CountAdjacent(slot, ix.BusyFor(m.ID), schedule.AdjacencyWindow) > 0 {
			count++
		}
	}
	return count
}

// efficiencyScore blends the slot score with attendance coverage (0.7/0.3),
// scales by the category weight, and clamps into [0, 100].
func efficiencyScore(score, coverage float64, category meeting.Type) float64 {
	weight, ok := efficiencyWeights[category]
	if !ok {
		weight = 1.0
	}
	return clamp((score*0.7 + coverage*100*0.3) * weight)
}

func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func partitionMembers(members []Member) (required, optional []Member) {
	for _, m := range members {
		switch m.Priority {
		case PriorityRequired:
			required = append(required, m)
		case PriorityOptional:
			optional = append(optional, m)
		}
	}
	return required, optional
}

func containsClock(times []string, clock string) bool {
	for _, t := range times {
		if t == clock {
			return true
		}
	}
	return false
}

func preparationTasks(profile meeting.Profile, slot schedule.TimeInterval) []Task {
	if !profile.NeedsPreparation {
		return nil
	}
	due := slot.Start.Add(-profile.PreparationLead)
	tasks := make([]Task, 0, len(profile.PreparationTasks))
	for _, desc := range profile.PreparationTasks {
		tasks = append(tasks, Task{Description: desc, Due: due})
	}
	return tasks
}

func followUpTasks(profile meeting.Profile, slot schedule.TimeInterval) []Task {
	if !profile.NeedsFollowUp {
		return nil
	}
	due := slot.End.Add(profile.FollowUpLead)
	tasks := make([]Task, 0, len(profile.FollowUpTasks))
	for _, desc := range profile.FollowUpTasks {
		tasks = append(tasks, Task{Description: desc, Due: due})
	}
	return tasks
}
