// Package calendar provides the date arithmetic the year grid is built on:
// leap years, day-of-year ordinals, ISO week numbers, and the fixed
// CET/CEST local-time rule used to resolve "today".
package calendar

import "time"

const dayDuration = 24 * time.Hour

// IsLeapYear reports whether the year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfYear returns the 1-based ordinal of the date within its year.
// The difference is taken between UTC midnights so the count stays exact
// regardless of the wall-clock offset the input happens to carry.
func DayOfYear(t time.Time) int {
	t = t.UTC()
	startOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	current := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(current.Sub(startOfYear)/dayDuration) + 1
}

// DateFromDayIndex is the inverse of DayOfYear: it maps a 0-based day index
// back to a UTC date in the given year.
func DateFromDayIndex(year int, dayIndex int) time.Time {
	return time.Date(year, time.January, 1+dayIndex, 0, 0, 0, 0, time.UTC)
}

// WeekNumber returns the ISO-8601 week number: the week containing the
// year's first Thursday is week 1.
func WeekNumber(t time.Time) int {
	t = t.UTC()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	// Shift to the Thursday of this week, then count weeks from Jan 1 of the
	// Thursday's year (which may differ from t's year around the boundary).
	d = d.AddDate(0, 0, 4-dayNum)
	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(d.Sub(yearStart)/dayDuration)/7 + 1
}

// LastSundayOfMonth returns the day of month of the last Sunday in the
// given month.
func LastSundayOfMonth(year int, month time.Month) int {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return lastDay.Day() - int(lastDay.Weekday())
}

// Clamp bounds n to the [min, max] interval.
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
