package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted on the command line and in scenario files
const DateLayout = "2006-01-02"

// daysPerYear is the average year length used for spans that cross year boundaries
const daysPerYear = 365.25

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s): %w", s, DateLayout, err)
	}
	return t, nil
}

// DaysBetween counts the calendar days from one date to another. Time of day and
// location are ignored; each date is taken as the calendar day it names.
func DaysBetween(fromDate, toDate time.Time) int {
	return int(calendarDay(toDate).Sub(calendarDay(fromDate)) / (24 * time.Hour))
}

// YearsUntilDate calculates the number of years between two dates, in whole days
// over an average year
func YearsUntilDate(fromDate, toDate time.Time) float64 {
	return float64(DaysBetween(fromDate, toDate)) / daysPerYear
}

// FractionBetween returns the span between two dates as a fraction of an average
// year, clamped to [0, 1]. An end before the start yields 0.
func FractionBetween(start, end time.Time) float64 {
	return clampUnit(YearsUntilDate(start, end))
}

// YearFractionElapsed returns the share of t's calendar year that has elapsed at t,
// measured in whole days against the actual length of that year.
func YearFractionElapsed(t time.Time) float64 {
	days := DaysBetween(BeginningOfYear(t), t)
	return clampUnit(float64(days) / float64(DaysInYear(t.Year())))
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clampUnit(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
