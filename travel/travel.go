// Package travel estimates transfer time between two free-text event
// locations. It is a keyword lookup, documented as an approximation; it is
// not a routing engine.
package travel

import (
	"strings"
	"time"
)

// DefaultEstimate is returned when either location is unrecognized.
const DefaultEstimate = 20 * time.Minute

type place string

const (
	placeOffice   place = "office"
	placeHome     place = "home"
	placeDowntown place = "downtown"
	placeAirport  place = "airport"
	placeCampus   place = "campus"
)

// Ordered keyword rules; first match wins.
var placeRules = []struct {
	place    place
	keywords []string
}{
	{placeOffice, []string{"office", "hq", "headquarters"}},
	{placeHome, []string{"home", "remote"}},
	{placeAirport, []string{"airport", "terminal"}},
	{placeCampus, []string{"campus", "university"}},
	{placeDowntown, []string{"downtown", "city center", "city centre"}},
}

// Symmetric minute table between known places. The diagonal is a short
// in-building transfer between two spots matching the same keyword.
var travelMinutes = map[place]map[place]int{
	placeOffice:   {placeOffice: 10, placeHome: 30, placeDowntown: 15, placeAirport: 45, placeCampus: 25},
	placeHome:     {placeHome: 10, placeDowntown: 25, placeAirport: 50, placeCampus: 35},
	placeDowntown: {placeDowntown: 10, placeAirport: 40, placeCampus: 20},
	placeAirport:  {placeAirport: 10, placeCampus: 55},
	placeCampus:   {placeCampus: 10},
}

// EstimateTravel approximates the transfer time from one location string to
// another. Identical locations cost nothing; unknown ones get the default.
func EstimateTravel(fromLocation, toLocation string) time.Duration {
	if strings.EqualFold(strings.TrimSpace(fromLocation), strings.TrimSpace(toLocation)) {
		return 0
	}

	from, fromKnown := classifyPlace(fromLocation)
	to, toKnown := classifyPlace(toLocation)
	if !fromKnown || !toKnown {
		return DefaultEstimate
	}

	if mins, ok := lookupMinutes(from, to); ok {
		return time.Duration(mins) * time.Minute
	}
	return DefaultEstimate
}

func classifyPlace(location string) (place, bool) {
	lowered := strings.ToLower(location)
	for _, rule := range placeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.place, true
			}
		}
	}
	return "", false
}

func lookupMinutes(a, b place) (int, bool) {
	if row, ok := travelMinutes[a]; ok {
		if mins, ok := row[b]; ok {
			return mins, true
		}
	}
	// The table stores each pair once; try the mirrored direction.
	if row, ok := travelMinutes[b]; ok {
		if mins, ok := row[a]; ok {
			return mins, true
		}
	}
	return 0, false
}
