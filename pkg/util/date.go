package util

import "time"

// DayFormat is the wire format for quote dates.
const DayFormat = "2006-01-02"

// ParseDay parses a calendar date in DayFormat. Returns (t, true) if it worked.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders t as a calendar date in DayFormat.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// Today returns the current date truncated to midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
