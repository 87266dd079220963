// Package gcal adapts Google Calendar API event payloads into the engine's
// busy-event representation. It performs no network calls; fetching and
// writing events belongs to the surrounding application.
package gcal

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/omriShneor/timewise/schedule"
	"github.com/omriShneor/timewise/timeutil"
)

// BusyEventsFromGoogle converts listed calendar items into busy events for
// the scheduling engine. Cancelled items and items with unparseable times are
// skipped; a fully empty result is valid input downstream.
func BusyEventsFromGoogle(items []*calendar.Event, timezone string) []schedule.BusyEvent {
	loc, _ := timeutil.ResolveLocation(timezone)

	var busy []schedule.BusyEvent
	for _, item := range items {
		if item == nil || item.Status == "cancelled" {
			continue
		}

		start, end, _, err := parseGoogleEventTimes(item, loc)
		if err != nil {
			continue
		}
		interval, err := schedule.NewInterval(start, end)
		if err != nil {
			continue
		}

		busy = append(busy, schedule.BusyEvent{
			ID:       item.Id,
			Title:    item.Summary,
			Interval: interval,
			Location: item.Location,
		})
	}
	return busy
}

func parseGoogleEventTimes(item *calendar.Event, loc *time.Location) (time.Time, time.Time, bool, error) {
	if item == nil || item.Start == nil || item.End == nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("event is missing start or end")
	}

	// All-day events use Date instead of DateTime.
	if item.Start.Date != "" {
		startDate, err := time.ParseInLocation("2006-01-02", item.Start.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse all-day start date: %w", err)
		}
		endDate, err := time.ParseInLocation("2006-01-02", item.End.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse all-day end date: %w", err)
		}
		return startDate, endDate, true, nil
	}

	if item.Start.DateTime == "" || item.End.DateTime == "" {
		return time.Time{}, time.Time{}, false, fmt.Errorf("event datetime is missing")
	}

	startTime, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse start datetime: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to parse end datetime: %w", err)
	}

	return startTime, endTime, false, nil
}
