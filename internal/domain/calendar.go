package domain

import "time"

// All day-boundary arithmetic in daybook is UTC-only: note dates are
// constructed at UTC midnight and compared by UTC calendar day, so
// adjacency and gap counts cannot shift across timezones.

// Day constructs the UTC midnight instant for a calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates an instant to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return Day(u.Year(), u.Month(), u.Day())
}

// SameDay reports whether two instants fall on the same UTC calendar
// day, ignoring time of day.
func SameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// ValidDay reports whether t is a usable calendar time. The zero value
// and the Unix epoch both mean "no date" for a waypoint.
func ValidDay(t time.Time) bool {
	return !t.IsZero() && t.Unix() != 0
}

// DaysBetween returns the number of whole days from a to b, negative
// when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)) / (24 * time.Hour))
}
