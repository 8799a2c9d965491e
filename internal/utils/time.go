package utils

import "time"

// Now returns the current time in UTC, truncated to microseconds so values
// round-trip through postgres timestamp columns unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// StartOfDay returns midnight of the given instant in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
