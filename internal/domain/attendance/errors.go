package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
	ErrNotCheckedIn        = errors.New("you need to check in first")
	ErrAlreadyCheckedOut   = errors.New("already checked out today")
	ErrInvalidCheckoutTime = errors.New("checkout time must be after check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
