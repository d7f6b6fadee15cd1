package attendance

import (
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
)

// CheckIn builds the day's record for a check-in at now. existing is the
// record already stored for (userID, day) or nil. The prior record is never
// modified; persistence is the only place mutation happens.
func CheckIn(existing *Attendance, userID string, now time.Time, policy Policy) (Attendance, error) {
	if existing != nil && existing.CheckInTime != nil {
		return Attendance{}, ErrAlreadyCheckedIn
	}

	checkIn := now
	rec := Attendance{
		UserID:      userID,
		Date:        datetime.DateOnly(now),
		CheckInTime: &checkIn,
		Status:      policy.ClassifyCheckIn(now),
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	return rec, nil
}

// CheckOut completes the day's record at now. rec must hold a check-in and
// no check-out yet. Total hours are rounded to two decimal places; a
// non-positive elapsed duration is rejected without touching the record.
func CheckOut(rec Attendance, now time.Time, policy Policy) (Attendance, error) {
	if rec.CheckInTime == nil {
		return Attendance{}, ErrNotCheckedIn
	}
	if rec.CheckOutTime != nil {
		return Attendance{}, ErrAlreadyCheckedOut
	}

	hours := datetime.Round2(datetime.HoursBetween(*rec.CheckInTime, now))
	if hours <= 0 {
		return Attendance{}, ErrInvalidCheckoutTime
	}

	checkOut := now
	rec.CheckOutTime = &checkOut
	rec.TotalHours = hours

	provisional := policy.ClassifyCheckIn(*rec.CheckInTime)
	rec.Status = policy.ClassifyCheckOut(hours, provisional)
	return rec, nil
}
