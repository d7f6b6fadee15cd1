package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
)

func TestCheckIn_NewDay(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 5, 0, 0, time.Local)

	rec, err := CheckIn(nil, "user-1", now, DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, "user-1", rec.UserID)
	assert.Equal(t, datetime.DateOnly(now), rec.Date)
	require.NotNil(t, rec.CheckInTime)
	assert.Equal(t, now, *rec.CheckInTime)
	assert.Nil(t, rec.CheckOutTime)
	assert.Equal(t, StatusPresent, rec.Status)
}

func TestCheckIn_LateArrival(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)

	rec, err := CheckIn(nil, "user-1", now, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, StatusLate, rec.Status)
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 5, 0, 0, time.Local)
	existing := &Attendance{ID: "rec-1", UserID: "user-1", CheckInTime: &now}

	_, err := CheckIn(existing, "user-1", now.Add(time.Hour), DefaultPolicy())
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckOut_FullDay(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 9, 0, 0, 0, time.Local)
	rec := Attendance{ID: "rec-1", UserID: "user-1", CheckInTime: &checkIn, Status: StatusPresent}

	updated, err := CheckOut(rec, checkIn.Add(8*time.Hour), DefaultPolicy())
	require.NoError(t, err)

	require.NotNil(t, updated.CheckOutTime)
	assert.Equal(t, 8.0, updated.TotalHours)
	assert.Equal(t, StatusPresent, updated.Status)
}

func TestCheckOut_RoundsHours(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 9, 0, 0, 0, time.Local)
	rec := Attendance{CheckInTime: &checkIn, Status: StatusPresent}

	updated, err := CheckOut(rec, checkIn.Add(7*time.Hour+20*time.Minute), DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 7.33, updated.TotalHours)
}

func TestCheckOut_LatePersistsOverFullDay(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	rec := Attendance{CheckInTime: &checkIn, Status: StatusLate}

	updated, err := CheckOut(rec, checkIn.Add(7*time.Hour), DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, StatusLate, updated.Status)
}

func TestCheckOut_LateDowngradesToHalfDay(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)
	rec := Attendance{CheckInTime: &checkIn, Status: StatusLate}

	updated, err := CheckOut(rec, checkIn.Add(5*time.Hour), DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, StatusHalfDay, updated.Status)
}

func TestCheckOut_Errors(t *testing.T) {
	now := time.Date(2026, 3, 16, 17, 0, 0, 0, time.Local)
	checkIn := now.Add(-8 * time.Hour)
	checkOut := now.Add(-time.Hour)

	_, err := CheckOut(Attendance{}, now, DefaultPolicy())
	assert.ErrorIs(t, err, ErrNotCheckedIn)

	_, err = CheckOut(Attendance{CheckInTime: &checkIn, CheckOutTime: &checkOut}, now, DefaultPolicy())
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	_, err = CheckOut(Attendance{CheckInTime: &now, Status: StatusPresent}, now.Add(-time.Minute), DefaultPolicy())
	assert.ErrorIs(t, err, ErrInvalidCheckoutTime)

	// Zero elapsed time is also rejected.
	_, err = CheckOut(Attendance{CheckInTime: &now, Status: StatusPresent}, now, DefaultPolicy())
	assert.ErrorIs(t, err, ErrInvalidCheckoutTime)
}
