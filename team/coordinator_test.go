package team

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omriShneor/timewise/meeting"
	"github.com/omriShneor/timewise/schedule"
	"github.com/omriShneor/timewise/timeutil"
)

// 2026-09-01 is a Tuesday.
var day1 = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func hours(startHour, endHour int) timeutil.WorkingHours {
	return timeutil.WorkingHours{
		Start: timeutil.Clock{Hour: startHour},
		End:   timeutil.Clock{Hour: endHour},
	}
}

func member(id string, priority Priority, zone string, startHour, endHour int) Member {
	return Member{
		ID:           id,
		Email:        id + "@example.com",
		Priority:     priority,
		TimeZone:     zone,
		WorkingHours: hours(startHour, endHour),
	}
}

func busyAllHorizon(t *testing.T, days int) []schedule.BusyEvent {
	t.Helper()
	interval, err := schedule.NewInterval(day1, day1.AddDate(0, 0, days))
	require.NoError(t, err)
	return []schedule.BusyEvent{{ID: "blocked", Title: "Blocked", Interval: interval}}
}

func TestCommonWindowIntersection(t *testing.T) {
	members := []Member{
		member("a", PriorityRequired, "UTC", 9, 18),
		member("b", PriorityRequired, "UTC", 10, 19),
		member("c", PriorityRequired, "UTC", 9, 17),
	}

	window := CommonWindow(members, "UTC")
	assert.Equal(t, timeutil.Clock{Hour: 10}, window.Start)
	assert.Equal(t, timeutil.Clock{Hour: 17}, window.End)
}

func TestCommonWindowAcrossZones(t *testing.T) {
	// London 09-18 and Berlin 09-18: Berlin's day runs an hour earlier on the
	// London clock, so the shared window is 09:00-17:00 London time.
	members := []Member{
		member("lon", PriorityRequired, "Europe/London", 9, 18),
		member("ber", PriorityRequired, "Europe/Berlin", 9, 18),
	}

	window := CommonWindow(members, "Europe/London")
	assert.Equal(t, timeutil.Clock{Hour: 9}, window.Start)
	assert.Equal(t, timeutil.Clock{Hour: 17}, window.End)
}

func TestCommonWindowFallsBackWhenEmpty(t *testing.T) {
	t.Run("disjoint hours", func(t *testing.T) {
		members := []Member{
			member("early", PriorityRequired, "UTC", 6, 10),
			member("late", PriorityRequired, "UTC", 14, 18),
		}
		assert.Equal(t, DefaultWindow, CommonWindow(members, "UTC"))
	})

	t.Run("no members", func(t *testing.T) {
		assert.Equal(t, DefaultWindow, CommonWindow(nil, "UTC"))
	})
}

func TestOffsetMinutes(t *testing.T) {
	assert.Equal(t, 0, OffsetMinutes("UTC"))
	assert.Equal(t, -300, OffsetMinutes("America/New_York"))
	assert.Equal(t, 540, OffsetMinutes("Asia/Tokyo"))
	assert.Equal(t, 0, OffsetMinutes("Mars/Olympus_Mons"), "unknown zones default to zero")
}

func TestScheduleMeetingZeroMembers(t *testing.T) {
	c := NewCoordinator(Config{})
	result, err := c.ScheduleMeeting(context.Background(), Request{
		Category:     meeting.General,
		Constraint:   schedule.Constraint{Duration: 30 * time.Minute},
		HorizonStart: day1,
	}, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
	assert.NotEmpty(t, result.Report.Recommendations, "empty-but-valid result still advises")
}

func TestScheduleMeetingRejectsBadConstraint(t *testing.T) {
	c := NewCoordinator(Config{})
	_, err := c.ScheduleMeeting(context.Background(), Request{
		Constraint: schedule.Constraint{Duration: -time.Hour},
	}, nil, nil)
	require.ErrorIs(t, err, schedule.ErrInvalidConstraint)
}

func TestScheduleMeetingFullyBooked(t *testing.T) {
	req := Request{
		Title:        "Planning",
		Category:     meeting.Planning,
		Constraint:   schedule.Constraint{Duration: time.Hour},
		Members:      []Member{member("a", PriorityRequired, "UTC", 9, 18)},
		HorizonStart: day1,
	}
	events := map[string][]schedule.BusyEvent{"a": busyAllHorizon(t, 20)}

	c := NewCoordinator(Config{})
	result, err := c.ScheduleMeeting(context.Background(), req, events, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Suggestions)

	joined := strings.ToLower(strings.Join(result.Report.Recommendations, " "))
	assert.Contains(t, joined, "attend", "fully booked teams get an attendance advisory")
}

func TestScheduleMeetingIdealStartOutranksOtherwiseEqualSlot(t *testing.T) {
	// Depress the base score below the clamp so the ideal-start bonus for a
	// planning meeting at 10:00 is visible against 13:00.
	avoid, err := schedule.NewInterval(day1, day1.Add(23*time.Hour))
	require.NoError(t, err)

	req := Request{
		Title:    "Quarterly planning",
		Category: meeting.Planning,
		Constraint: schedule.Constraint{
			Duration:    time.Hour,
			AvoidRanges: []schedule.TimeInterval{avoid},
		},
		Members:      []Member{member("a", PriorityRequired, "UTC", 9, 18)},
		HorizonStart: day1,
		Deadline:     day1.AddDate(0, 0, 1),
	}

	c := NewCoordinator(Config{TopK: 100})
	result, err := c.ScheduleMeeting(context.Background(), req, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Suggestions)

	var at10, at13 *Suggestion
	for i := range result.Suggestions {
		switch result.Suggestions[i].Slot.Start.Format("15:04") {
		case "10:00":
			at10 = &result.Suggestions[i]
		case "13:00":
			at13 = &result.Suggestions[i]
		}
	}
	require.NotNil(t, at10)
	require.NotNil(t, at13)

	assert.Greater(t, at10.Score, at13.Score)
	assert.Contains(t, at10.Rationale, "ideal start")
}

func TestScheduleMeetingOptionalConflictsAreTentative(t *testing.T) {
	req := Request{
		Category:   meeting.General,
		Constraint: schedule.Constraint{Duration: time.Hour},
		Members: []Member{
			member("req", PriorityRequired, "UTC", 9, 18),
			member("opt", PriorityOptional, "UTC", 9, 18),
		},
		HorizonStart: day1,
		Deadline:     day1.AddDate(0, 0, 1),
	}
	events := map[string][]schedule.BusyEvent{"opt": busyAllHorizon(t, 2)}

	c := NewCoordinator(Config{TopK: 100})
	result, err := c.ScheduleMeeting(context.Background(), req, events, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Suggestions, "an optional member's conflicts are never fatal")

	for _, s := range result.Suggestions {
		assert.Equal(t, 1.0, s.AttendanceCoverage, "optional unavailability never reduces required coverage")
		for _, a := range s.Availability {
			switch a.MemberID {
			case "req":
				assert.Equal(t, Available, a.Status)
			case "opt":
				assert.Equal(t, Tentative, a.Status)
			}
		}
	}
}

func TestScheduleMeetingCoverageIsBounded(t *testing.T) {
	req := Request{
		Category:   meeting.General,
		Constraint: schedule.Constraint{Duration: time.Hour},
		Members: []Member{
			member("a", PriorityRequired, "UTC", 9, 18),
			member("b", PriorityRequired, "UTC", 9, 18),
		},
		HorizonStart: day1,
		Deadline:     day1.AddDate(0, 0, 1),
	}
	// Member b is busy all morning; afternoon slots cover both.
	morning, err := schedule.NewInterval(day1.Add(9*time.Hour), day1.Add(13*time.Hour))
	require.NoError(t, err)
	events := map[string][]schedule.BusyEvent{
		"b": {{ID: "m", Title: "Morning block", Interval: morning}},
	}

	c := NewCoordinator(Config{TopK: 100})
	result, err := c.ScheduleMeeting(context.Background(), req, events, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Suggestions)

	sawPartial := false
	for _, s := range result.Suggestions {
		assert.GreaterOrEqual(t, s.AttendanceCoverage, 0.0)
		assert.LessOrEqual(t, s.AttendanceCoverage, 1.0)
		if s.AttendanceCoverage == 0.5 {
			sawPartial = true
		}
	}
	assert.True(t, sawPartial, "morning slots cover one of two required members")
}

func TestCountUncomfortable(t *testing.T) {
	c := NewCoordinator(Config{})
	slot, err := schedule.NewInterval(day1.Add(13*time.Hour), day1.Add(14*time.Hour))
	require.NoError(t, err)

	attendees := []Member{
		member("utc", PriorityRequired, "UTC", 9, 18),             // 13:00 local, fine
		member("tokyo", PriorityRequired, "Asia/Tokyo", 9, 18),    // 22:00 local, uncomfortable
		member("ny", PriorityRequired, "America/New_York", 9, 18), // 08:00 local, fine
	}
	assert.Equal(t, 1, c.countUncomfortable(slot, attendees, "UTC"))

	early, err := schedule.NewInterval(day1.Add(9*time.Hour), day1.Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, c.countUncomfortable(early, attendees, "UTC"), "New York is at 04:00 local")
}

func TestScheduleMeetingRecommendsRecordingAcrossZones(t *testing.T) {
	req := Request{
		Category:   meeting.General,
		Constraint: schedule.Constraint{Duration: 30 * time.Minute},
		Members: []Member{
			member("a", PriorityRequired, "UTC", 9, 18),
			member("b", PriorityRequired, "America/New_York", 9, 18),
			member("c", PriorityOptional, "Asia/Tokyo", 9, 18),
		},
		HorizonStart: day1,
		Deadline:     day1.AddDate(0, 0, 2),
	}

	c := NewCoordinator(Config{})
	result, err := c.ScheduleMeeting(context.Background(), req, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Report.DistinctTimeZones)
	joined := strings.Join(result.Report.Recommendations, " ")
	assert.Contains(t, joined, "record")
}

func TestScheduleMeetingDeterministicUnderParallelism(t *testing.T) {
	req := Request{
		Category:   meeting.Review,
		Constraint: schedule.Constraint{Duration: time.Hour},
		Members: []Member{
			member("a", PriorityRequired, "UTC", 9, 18),
			member("b", PriorityRequired, "Europe/Berlin", 9, 18),
			member("c", PriorityOptional, "UTC", 10, 16),
		},
		HorizonStart: day1,
	}
	events := map[string][]schedule.BusyEvent{
		"a": {{ID: "x", Interval: mustInterval(t, day1.Add(10*time.Hour), day1.Add(11*time.Hour))}},
		"b": {{ID: "y", Interval: mustInterval(t, day1.Add(14*time.Hour), day1.Add(15*time.Hour))}},
	}

	run := func(parallelism int) *Result {
		c := NewCoordinator(Config{Parallelism: parallelism})
		result, err := c.ScheduleMeeting(context.Background(), req, events, nil)
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(8)

	require.Len(t, parallel.Suggestions, len(serial.Suggestions))
	for i := range serial.Suggestions {
		assert.Equal(t, serial.Suggestions[i].Slot, parallel.Suggestions[i].Slot)
		assert.Equal(t, serial.Suggestions[i].Score, parallel.Suggestions[i].Score)
		assert.Equal(t, serial.Suggestions[i].EfficiencyScore, parallel.Suggestions[i].EfficiencyScore)
		assert.Equal(t, serial.Suggestions[i].Rationale, parallel.Suggestions[i].Rationale)
	}
}

func TestScheduleMeetingAttachesPreparationTasks(t *testing.T) {
	req := Request{
		Title:        "Roadmap workshop",
		Category:     meeting.Workshop,
		Constraint:   schedule.Constraint{Duration: 2 * time.Hour},
		Members:      []Member{member("a", PriorityRequired, "UTC", 9, 18)},
		HorizonStart: day1,
		Deadline:     day1.AddDate(0, 0, 1),
	}

	c := NewCoordinator(Config{})
	result, err := c.ScheduleMeeting(context.Background(), req, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Suggestions)

	profile := meeting.ProfileFor(meeting.Workshop)
	for _, s := range result.Suggestions {
		require.NotEmpty(t, s.Preparation)
		for _, task := range s.Preparation {
			assert.Equal(t, s.Slot.Start.Add(-profile.PreparationLead), task.Due)
		}
		require.NotEmpty(t, s.FollowUp)
		for _, task := range s.FollowUp {
			assert.Equal(t, s.Slot.End.Add(profile.FollowUpLead), task.Due)
		}
	}
	assert.True(t, result.Report.NeedsPreparation)
	assert.True(t, result.Report.NeedsFollowUp)
}

func TestScheduleMeetingRespectsDeadline(t *testing.T) {
	req := Request{
		Category:     meeting.General,
		Constraint:   schedule.Constraint{Duration: time.Hour},
		Members:      []Member{member("a", PriorityRequired, "UTC", 9, 18)},
		HorizonStart: day1,
		Deadline:     day1.AddDate(0, 0, 2),
	}

	c := NewCoordinator(Config{TopK: 1000})
	result, err := c.ScheduleMeeting(context.Background(), req, nil, nil)
	require.NoError(t, err)

	for _, s := range result.Suggestions {
		assert.True(t, s.Slot.End.Before(req.Deadline) || s.Slot.End.Equal(req.Deadline),
			"slot %s ends past the deadline", s.Slot)
	}
}

func mustInterval(t *testing.T, start, end time.Time) schedule.TimeInterval {
	t.Helper()
	interval, err := schedule.NewInterval(start, end)
	require.NoError(t, err)
	return interval
}
