package team

// Static zone-to-offset table, minutes east of UTC. This is a documented
// approximation: no DST, no IANA database. Unknown zones resolve to 0 so an
// unrecognized name degrades the math instead of failing the request.
var zoneOffsetMinutes = map[string]int{
	"UTC":                 0,
	"America/New_York":    -300,
	"America/Chicago":     -360,
	"America/Denver":      -420,
	"America/Los_Angeles": -480,
	"America/Sao_Paulo":   -180,
	"Europe/London":       0,
	"Europe/Paris":        60,
	"Europe/Berlin":       60,
	"Europe/Madrid":       60,
	"Europe/Kyiv":         120,
	"Asia/Jerusalem":      120,
	"Asia/Dubai":          240,
	"Asia/Kolkata":        330,
	"Asia/Shanghai":       480,
	"Asia/Singapore":      480,
	"Asia/Tokyo":          540,
	"Australia/Sydney":    600,
}

// OffsetMinutes returns the static offset for a zone name, 0 when unknown.
func OffsetMinutes(zone string) int {
	return zoneOffsetMinutes[zone]
}

// relativeOffset is the shift, in minutes, from the reference zone's clock to
// the member zone's clock.
func relativeOffset(memberZone, referenceZone string) int {
	return OffsetMinutes(memberZone) - OffsetMinutes(referenceZone)
}
