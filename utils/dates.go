// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

// BeginningOfDay returns midnight of t's date in t's location.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// calendarDay pins t's local date to midnight UTC, where every day is 24h long.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from start to end, each read in its own
// location. Daylight saving shifts do not shorten or lengthen a day.
func DaysBetween(start, end time.Time) int {
	return int(calendarDay(end).Sub(calendarDay(start)) / (24 * time.Hour))
}

// RelativeDay labels a visit date the way the front desk reads it:
// "Today", "Yesterday" or "N days ago". Future dates count as today.
func RelativeDay(visit, today time.Time) string {
	switch days := DaysBetween(visit, today); {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
