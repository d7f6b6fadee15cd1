package attendance

import (
	"time"
)

// Policy holds the office timing thresholds that drive status
// classification. It is passed in explicitly so the classifier can be
// tested with arbitrary thresholds.
type Policy struct {
	OfficeStartHour      int
	LateThresholdMinutes int
	MinFullDayHours      float64
	MinHalfDayHours      float64
}

// DefaultPolicy mirrors the standard office timings: start 9:00, 15 minute
// grace, 6 hour full day, 4 hour half day.
func DefaultPolicy() Policy {
	return Policy{
		OfficeStartHour:      9,
		LateThresholdMinutes: 15,
		MinFullDayHours:      6,
		MinHalfDayHours:      4,
	}
}

// ClassifyCheckIn maps a check-in instant to its provisional status.
// The cutoff is the check-in day at OfficeStartHour with the minute field
// set from LateThresholdMinutes (start 9, threshold 15 -> cutoff 09:15).
// Arriving strictly after the cutoff is late; at the cutoff exactly is not.
func (p Policy) ClassifyCheckIn(checkIn time.Time) Status {
	cutoff := time.Date(
		checkIn.Year(), checkIn.Month(), checkIn.Day(),
		p.OfficeStartHour, p.LateThresholdMinutes, 0, 0,
		checkIn.Location(),
	)

	if checkIn.After(cutoff) {
		return StatusLate
	}
	return StatusPresent
}

// ClassifyCheckOut re-evaluates the status once worked hours are known.
// Working fewer than MinHalfDayHours keeps the provisional status rather
// than downgrading it further. A late arrival stays late even after a full
// day of hours; a late arrival with only half-day hours becomes half-day.
func (p Policy) ClassifyCheckOut(hoursWorked float64, provisional Status) Status {
	var candidate Status
	switch {
	case hoursWorked >= p.MinFullDayHours:
		candidate = StatusPresent
	case hoursWorked >= p.MinHalfDayHours:
		candidate = StatusHalfDay
	default:
		candidate = provisional
	}

	if provisional == StatusLate && candidate == StatusPresent {
		return StatusLate
	}
	return candidate
}
