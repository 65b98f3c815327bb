// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatRFC3339 formats a UTC time using RFC3339, the serialization used in
// API responses and system-authored timestamps.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
