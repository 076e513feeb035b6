// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit Local timezone is prohibited.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatStoredTime formats a UTC time for storage inside JSON columns using
// RFC3339 format. This keeps timestamp serialization consistent across rows.
func FormatStoredTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseStoredTime parses a timestamp previously written by FormatStoredTime.
func ParseStoredTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp format %q: %w", s, err)
	}
	return t, nil
}
