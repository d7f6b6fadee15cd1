package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

func TestHistoryFilter_Validate_Defaults(t *testing.T) {
	filter := HistoryFilter{}
	require.NoError(t, filter.Validate())

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)
}

func TestHistoryFilter_Validate_Errors(t *testing.T) {
	bad := "2026-13-40"
	filter := HistoryFilter{StartDate: &bad, Page: -1, Limit: 500}

	err := filter.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "start_date")
	assert.Contains(t, details, "page")
	assert.Contains(t, details, "limit")
}

func TestMonthlySummaryRequest_Validate(t *testing.T) {
	req := MonthlySummaryRequest{Year: 2026, Month: 3}
	assert.NoError(t, req.Validate())

	req = MonthlySummaryRequest{Year: 2026, Month: 13}
	assert.Error(t, req.Validate())

	req = MonthlySummaryRequest{Year: 1990, Month: 5}
	assert.Error(t, req.Validate())
}

func TestNewAttendanceResponse(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 9, 5, 0, 0, time.UTC)
	rec := Attendance{
		ID:          "rec-1",
		UserID:      "user-1",
		Date:        time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		CheckInTime: &checkIn,
		TotalHours:  0,
		Status:      StatusPresent,
	}

	resp := NewAttendanceResponse(rec)

	assert.Equal(t, "2026-03-16", resp.Date)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2026-03-16T09:05:00Z", *resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
	assert.Equal(t, StatusPresent, resp.Status)
}
