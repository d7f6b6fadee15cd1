package attendance

import (
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
)

// PeriodAggregate is the computed attendance summary for one user over one
// date range. It is never persisted.
type PeriodAggregate struct {
	Present              int     `json:"present"`
	Late                 int     `json:"late"`
	HalfDay              int     `json:"halfDay"`
	Absent               int     `json:"absent"`
	TotalHours           float64 `json:"totalHours"`
	AttendancePercentage float64 `json:"attendancePercentage"`
	ApplicableDays       int     `json:"applicableDays"`
}

// Aggregate tallies records for one user over [rangeStart, rangeEnd].
// The range is clamped to the user's registration day on the left and to
// today on the right; absent days are derived from the day count, never
// read from stored records. A range entirely before registration or
// entirely in the future yields zero applicable days and zero percentage.
func Aggregate(records []Attendance, registeredAt, today, rangeStart, rangeEnd time.Time) PeriodAggregate {
	effectiveStart := datetime.DateOnly(rangeStart)
	if reg := datetime.DateOnly(registeredAt); reg.After(effectiveStart) {
		effectiveStart = reg
	}
	effectiveEnd := datetime.DateOnly(rangeEnd)
	if day := datetime.DateOnly(today); day.Before(effectiveEnd) {
		effectiveEnd = day
	}

	agg := PeriodAggregate{
		ApplicableDays: datetime.DaysInRange(effectiveStart, effectiveEnd),
	}

	var totalHours float64
	for _, rec := range records {
		totalHours += rec.TotalHours
		switch rec.Status {
		case StatusPresent:
			agg.Present++
		case StatusLate:
			agg.Late++
		case StatusHalfDay:
			agg.HalfDay++
		}
	}
	agg.TotalHours = datetime.Round2(totalHours)

	worked := agg.Present + agg.Late + agg.HalfDay
	agg.Absent = agg.ApplicableDays - worked
	if agg.Absent < 0 {
		agg.Absent = 0
	}
	if agg.ApplicableDays > 0 {
		agg.AttendancePercentage = datetime.Round2(float64(worked) / float64(agg.ApplicableDays) * 100)
	}
	return agg
}
