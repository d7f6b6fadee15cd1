package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func recordOn(d time.Time, status Status, hours float64) Attendance {
	checkIn := d.Add(9 * time.Hour)
	return Attendance{Date: d, CheckInTime: &checkIn, Status: status, TotalHours: hours}
}

func TestAggregate_FullMonth(t *testing.T) {
	start, end := day(2026, 2, 1), day(2026, 2, 28)
	registered := day(2025, 6, 1)
	today := day(2026, 3, 10)

	records := []Attendance{
		recordOn(day(2026, 2, 2), StatusPresent, 8),
		recordOn(day(2026, 2, 3), StatusLate, 7.5),
		recordOn(day(2026, 2, 4), StatusHalfDay, 4.25),
		recordOn(day(2026, 2, 5), StatusPresent, 8),
	}

	agg := Aggregate(records, registered, today, start, end)

	assert.Equal(t, 28, agg.ApplicableDays)
	assert.Equal(t, 2, agg.Present)
	assert.Equal(t, 1, agg.Late)
	assert.Equal(t, 1, agg.HalfDay)
	assert.Equal(t, 24, agg.Absent)
	assert.Equal(t, 27.75, agg.TotalHours)
	assert.InDelta(t, 14.29, agg.AttendancePercentage, 0.001)
}

func TestAggregate_MidMonthRegistration(t *testing.T) {
	start, end := day(2026, 2, 1), day(2026, 2, 28)
	registered := day(2026, 2, 15)
	today := day(2026, 3, 10)

	agg := Aggregate(nil, registered, today, start, end)

	// Feb 15..Feb 28 inclusive.
	assert.Equal(t, 14, agg.ApplicableDays)
	assert.Equal(t, 14, agg.Absent)
	assert.Zero(t, agg.AttendancePercentage)
}

func TestAggregate_CurrentMonthClampsToToday(t *testing.T) {
	start, end := day(2026, 3, 1), day(2026, 3, 31)
	registered := day(2025, 6, 1)
	today := day(2026, 3, 10)

	records := []Attendance{
		recordOn(day(2026, 3, 2), StatusPresent, 8),
	}

	agg := Aggregate(records, registered, today, start, end)

	assert.Equal(t, 10, agg.ApplicableDays)
	assert.Equal(t, 9, agg.Absent)
	assert.InDelta(t, 10.0, agg.AttendancePercentage, 0.001)
}

func TestAggregate_FutureMonth(t *testing.T) {
	start, end := day(2026, 5, 1), day(2026, 5, 31)
	registered := day(2025, 6, 1)
	today := day(2026, 3, 10)

	agg := Aggregate(nil, registered, today, start, end)

	assert.Zero(t, agg.ApplicableDays)
	assert.Zero(t, agg.Absent)
	assert.Zero(t, agg.AttendancePercentage)
}

func TestAggregate_RangeBeforeRegistration(t *testing.T) {
	start, end := day(2026, 1, 1), day(2026, 1, 31)
	registered := day(2026, 2, 15)
	today := day(2026, 3, 10)

	agg := Aggregate(nil, registered, today, start, end)

	assert.Zero(t, agg.ApplicableDays)
	assert.Zero(t, agg.Absent)
	assert.Zero(t, agg.AttendancePercentage)
}

func TestAggregate_NeverCountsNegativeAbsent(t *testing.T) {
	start, end := day(2026, 2, 1), day(2026, 2, 28)
	// Registered after the records exist; applicable window is tiny.
	registered := day(2026, 2, 28)
	today := day(2026, 3, 10)

	records := []Attendance{
		recordOn(day(2026, 2, 2), StatusPresent, 8),
		recordOn(day(2026, 2, 3), StatusPresent, 8),
	}

	agg := Aggregate(records, registered, today, start, end)

	assert.Equal(t, 1, agg.ApplicableDays)
	assert.Equal(t, 0, agg.Absent)
}
