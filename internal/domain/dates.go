package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day-month-year form used for every caller-facing date.
const DateLayout = "02-01-2006"

// ParseDate parses a DD-MM-YYYY string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a DD-MM-YYYY date", s)
	}
	return t, nil
}

// FormatDate renders t as DD-MM-YYYY. The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// MonthStart returns midnight on the 1st of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthlyDates lists the 1st of every month from start's month up to and including stop.
func MonthlyDates(start, stop time.Time) []time.Time {
	var dates []time.Time
	for d := MonthStart(start); !d.After(stop); d = d.AddDate(0, 1, 0) {
		dates = append(dates, d)
	}
	return dates
}
