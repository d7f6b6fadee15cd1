package datetime

import (
	"math"
	"time"
)

// Clock abstracts the current time so services can be tested at fixed
// instants.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// DateOnly truncates t to midnight in its own location. Records are keyed
// by this value.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current calendar day per clock.
func Today(clock Clock) time.Time {
	return DateOnly(clock.Now())
}

// HoursBetween returns the elapsed hours from start to end. The result is
// negative when end precedes start.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// DaysInRange counts calendar days in [start, end] inclusive, both taken
// as date-only values. Returns 0 when start is after end.
func DaysInRange(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// MonthRange returns the first and last day of the given calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
