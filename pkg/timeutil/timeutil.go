// Package timeutil provides local-day and ISO-week bounds for the rollup
// queries. "Today" and "this week" always mean the application's local time,
// which main.go pins to the school's timezone.
package timeutil

import "time"

// StartOfDay returns local midnight for the day containing t.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the Monday of the ISO week
// containing t.
func StartOfWeek(t time.Time) time.Time {
	t = StartOfDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started six days ago
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek returns local midnight of the Monday after the ISO week
// containing t. Week ranges are half-open: [StartOfWeek, EndOfWeek).
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7)
}

// LocalDate formats the local calendar date of t for comparison against DATE
// columns. Casting a DATE to timestamptz follows the database session
// timezone, not the application's, so date comparisons go through this
// instead of midnight bounds.
func LocalDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
