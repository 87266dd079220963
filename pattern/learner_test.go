package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omriShneor/timewise/meeting"
	"github.com/omriShneor/timewise/schedule"
)

// Week of Monday 2026-08-31.
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func historyEvent(t *testing.T, day int, hour int, duration time.Duration, title string) schedule.BusyEvent {
	t.Helper()
	start := monday.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
	interval, err := schedule.NewInterval(start, start.Add(duration))
	require.NoError(t, err)
	return schedule.BusyEvent{ID: title, Title: title, Interval: interval}
}

func sampleHistory(t *testing.T) []schedule.BusyEvent {
	t.Helper()
	return []schedule.BusyEvent{
		historyEvent(t, 0, 10, 30*time.Minute, "Daily standup"),
		historyEvent(t, 1, 10, 30*time.Minute, "Daily standup"),
		historyEvent(t, 2, 10, 30*time.Minute, "Daily standup"),
		historyEvent(t, 3, 10, 30*time.Minute, "Daily standup"),
		historyEvent(t, 0, 14, time.Hour, "Sprint planning"),
		historyEvent(t, 1, 14, time.Hour, "Sprint planning"),
		historyEvent(t, 2, 14, time.Hour, "Design review"),
		historyEvent(t, 0, 9, 30*time.Minute, "1:1 with Dana"),
		historyEvent(t, 1, 9, 30*time.Minute, "1:1 with Sam"),
		historyEvent(t, 0, 8, time.Hour, "Gym"),
		historyEvent(t, 2, 16, 45*time.Minute, "Coffee chat"),
	}
}

func TestLearnProductiveHours(t *testing.T) {
	profile := Learn("user-1", sampleHistory(t))

	assert.Equal(t, "user-1", profile.SubjectID)
	assert.Equal(t, []int{9, 10, 14}, profile.MostProductiveHours)
	assert.Equal(t, []int{8, 16}, profile.LeastProductiveHours)
}

func TestLearnOptimalWeekdays(t *testing.T) {
	profile := Learn("user-1", sampleHistory(t))
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, profile.OptimalWeekdays)
}

func TestLearnFatigueBands(t *testing.T) {
	profile := Learn("user-1", sampleHistory(t))
	assert.Equal(t, []string{"10:00"}, profile.FatigueTimeBands, "only hours with more than 3 events qualify")
}

func TestLearnAvgDurationByCategory(t *testing.T) {
	profile := Learn("user-1", sampleHistory(t))

	assert.Equal(t, 30*time.Minute, profile.AvgDurationByCategory[meeting.Standup])
	assert.Equal(t, time.Hour, profile.AvgDurationByCategory[meeting.Planning])
	assert.Equal(t, time.Hour, profile.AvgDurationByCategory[meeting.Review])
	assert.Equal(t, 30*time.Minute, profile.AvgDurationByCategory[meeting.OneOnOne])
	assert.Equal(t, 45*time.Minute, profile.AvgDurationByCategory[meeting.Social])
	assert.Equal(t, time.Hour, profile.AvgDurationByCategory[meeting.General])
}

func TestLearnBelowFloorReturnsNeutralProfile(t *testing.T) {
	profile := Learn("user-2", sampleHistory(t)[:4])

	assert.Equal(t, "user-2", profile.SubjectID)
	assert.Empty(t, profile.MostProductiveHours)
	assert.Empty(t, profile.LeastProductiveHours)
	assert.Empty(t, profile.OptimalWeekdays)
	assert.Empty(t, profile.FatigueTimeBands)
	assert.Empty(t, profile.AvgDurationByCategory)
	assert.Nil(t, profile.Hints(), "a neutral profile biases nothing")
}

func TestLearnIsDeterministic(t *testing.T) {
	first := Learn("user-1", sampleHistory(t))
	second := Learn("user-1", sampleHistory(t))

	assert.Equal(t, first.MostProductiveHours, second.MostProductiveHours)
	assert.Equal(t, first.LeastProductiveHours, second.LeastProductiveHours)
	assert.Equal(t, first.OptimalWeekdays, second.OptimalWeekdays)
	assert.Equal(t, first.FatigueTimeBands, second.FatigueTimeBands)
}

func TestProfileHints(t *testing.T) {
	profile := Learn("user-1", sampleHistory(t))
	hints := profile.Hints()

	require.NotNil(t, hints)
	assert.Equal(t, profile.MostProductiveHours, hints.FrequentHours)
	assert.Equal(t, profile.OptimalWeekdays, hints.OptimalWeekdays)
}

func TestStore(t *testing.T) {
	store := NewStore(0)

	t.Run("learn caches the profile", func(t *testing.T) {
		learned := store.Learn("user-1", sampleHistory(t))
		cached, ok := store.Get("user-1")
		require.True(t, ok)
		assert.Equal(t, learned.MostProductiveHours, cached.MostProductiveHours)
	})

	t.Run("invalidate drops one subject", func(t *testing.T) {
		store.Learn("user-2", sampleHistory(t))
		store.Invalidate("user-1")

		_, ok := store.Get("user-1")
		assert.False(t, ok)
		_, ok = store.Get("user-2")
		assert.True(t, ok)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		store.Clear()
		_, ok := store.Get("user-2")
		assert.False(t, ok)
	})
}
