package team

import (
	"fmt"
	"time"

	"github.com/omriShneor/timewise/meeting"
)

// coverageAdvisoryThreshold is the average coverage below which the report
// recommends loosening the request.
const coverageAdvisoryThreshold = 0.8

// recordingZoneThreshold is the distinct-zone count that triggers the
// recording recommendation.
const recordingZoneThreshold = 3

// buildReport summarizes the run and derives fixed-rule recommendations.
func buildReport(suggestions []Suggestion, members []Member, profile meeting.Profile) Report {
	report := Report{
		GeneratedAt:      time.Now(),
		NeedsPreparation: profile.NeedsPreparation,
		NeedsFollowUp:    profile.NeedsFollowUp,
	}

	for _, s := range suggestions {
		for _, a := range s.Availability {
			report.TotalConflicts += len(a.Conflicts)
		}
		report.AverageCoverage += s.AttendanceCoverage
	}
	if len(suggestions) > 0 {
		report.AverageCoverage /= float64(len(suggestions))
	}

	zones := make(map[string]struct{})
	for _, m := range members {
		zones[m.TimeZone] = struct{}{}
	}
	report.DistinctTimeZones = len(zones)

	if len(suggestions) == 0 {
		report.Recommendations = append(report.Recommendations,
			"No slot keeps every required attendee available; widen the horizon, shorten the meeting, or drop a constraint.")
	}
	if report.AverageCoverage < coverageAdvisoryThreshold {
		report.Recommendations = append(report.Recommendations,
			"Attendance coverage is low; consider relaxing constraints or enabling remote attendance.")
	}
	if report.DistinctTimeZones >= recordingZoneThreshold {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Members span %d time zones; record the meeting for those who cannot attend live.", report.DistinctTimeZones))
	}
	if profile.NeedsPreparation {
		report.Recommendations = append(report.Recommendations,
			"This meeting type needs preparation; task due times are attached to each suggestion.")
	}

	return report
}
