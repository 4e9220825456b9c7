package utils

import (
	"time"
)

// venezuelaTZ is the Venezuela time zone (VET, UTC-4)
var venezuelaTZ = time.FixedZone("VET", -4*60*60)

// VenezuelaTime returns the current time in the Venezuela time zone
func VenezuelaTime() time.Time {
	return time.Now().In(venezuelaTZ)
}

// FormatTimestamp formats a time for operator-facing output
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
