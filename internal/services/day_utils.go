package services

import (
	"math"
	"time"
)

// DateAtLocation truncates a timestamp to midnight in the given location.
// All cycle math works on calendar days, never on raw timestamps.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering the
// calendar day of the given timestamp.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole calendar days from a to b (negative if b is
// earlier). Both arguments are truncated to their own calendar day first.
func DaysBetween(a time.Time, b time.Time) int {
	dayA := DateAtLocation(a, a.Location())
	dayB := DateAtLocation(b, b.Location())
	return int(math.Round(dayB.Sub(dayA).Hours() / 24))
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return (day.Equal(start) || day.After(start)) && (day.Equal(end) || day.Before(end))
}
