package utils

import (
	"regexp"
	"time"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// Today returns the current date at midnight UTC. Delivery projections are
// date arithmetic, never time-of-day.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatHumanDate renders a date the way the inventory screen shows it,
// e.g. "February 01, 2026".
func FormatHumanDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
