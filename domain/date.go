package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO calendar date format used for Event.Date.
	DateLayout = "2006-01-02"
	// TimestampLayout matches an ISO 8601 UTC timestamp with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ParseDate parses an ISO date and returns midnight UTC of that day.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(DateLayout) != value {
		return time.Time{}, fmt.Errorf("date %q is not in %s form", value, DateLayout)
	}
	return t, nil
}

// DateOf strips the time of day from t, keeping the calendar date in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDate builds the ISO date for a year, month and day.
func FormatDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the number of calendar days from one ISO date to another.
// The result is negative when to is before from.
func DaysBetween(from, to string) (int, error) {
	start, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// FormatTimestamp renders t as an ISO 8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
