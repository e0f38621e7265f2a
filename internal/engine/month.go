package engine

import (
	"strings"
	"time"
)

// monthLayout is the canonical month key format. Keys of this form sort
// lexicographically in chronological order, which the whole engine relies on.
const monthLayout = "2006-01"

// MonthOf returns the YYYY-MM month key for a point in time.
func MonthOf(t time.Time) string {
	return t.Format(monthLayout)
}

// MonthOfDate returns the YYYY-MM prefix of a YYYY-MM-DD date string.
// Malformed dates are a caller contract violation and are not defended against.
func MonthOfDate(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// NextMonth returns the month key immediately after m.
func NextMonth(m string) string {
	t, err := time.Parse(monthLayout, m)
	if err != nil {
		return m
	}
	return t.AddDate(0, 1, 0).Format(monthLayout)
}

// PrevMonth returns the month key immediately before m.
func PrevMonth(m string) string {
	t, err := time.Parse(monthLayout, m)
	if err != nil {
		return m
	}
	return t.AddDate(0, -1, 0).Format(monthLayout)
}

// MonthRange returns every month key from start to end inclusive, in
// chronological order. Returns nil when start is after end.
func MonthRange(start, end string) []string {
	if start > end {
		return nil
	}
	var months []string
	for m := start; m <= end; m = NextMonth(m) {
		months = append(months, m)
	}
	return months
}

// IsYearStart reports whether m is the first month of a calendar year.
// Used for visual year separators only; it has no financial meaning.
func IsYearStart(m string) bool {
	return strings.HasSuffix(m, "-01")
}

// YearOf returns the YYYY prefix of a month or date key.
func YearOf(key string) string {
	if len(key) < 4 {
		return key
	}
	return key[:4]
}
