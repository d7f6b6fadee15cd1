package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

// Attendance is one user's record for one calendar day. At most one record
// exists per (user, day); days without a record count as absent at
// aggregation time and are never stored.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	TotalHours   float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	UserName     *string
	UserEmail    *string
	EmployeeCode *string
	Department   *string
}
