package team

import "github.com/omriShneor/timewise/timeutil"

// DefaultWindow is the fallback when members share no working hours.
var DefaultWindow = timeutil.WorkingHours{
	Start: timeutil.Clock{Hour: 9},
	End:   timeutil.Clock{Hour: 18},
}

// CommonWindow intersects the members' daily working hours, each expressed in
// the reference zone's clock via the static offset table. An empty or
// inverted intersection falls back to DefaultWindow rather than failing.
func CommonWindow(members []Member, referenceZone string) timeutil.WorkingHours {
	first := true
	var common timeutil.WorkingHours

	for _, m := range members {
		if !m.WorkingHours.Valid() {
			continue
		}
		// A member two hours ahead of the reference works two hours earlier
		// on the reference clock.
		shifted := m.WorkingHours.Shift(-relativeOffset(m.TimeZone, referenceZone))
		if first {
			common = shifted
			first = false
			continue
		}
		if shifted.Start.Minutes() > common.Start.Minutes() {
			common.Start = shifted.Start
		}
		if shifted.End.Minutes() < common.End.Minutes() {
			common.End = shifted.End
		}
	}

	if first || !common.Valid() {
		return DefaultWindow
	}
	return common
}
