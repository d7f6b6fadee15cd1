package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func TestBuildCSV_HeaderOnly(t *testing.T) {
	got := BuildCSV(nil)
	assert.Equal(t, "Employee Name,Employee ID,Department,Date,Check In,Check Out,Total Hours,Status", got)
}

func TestBuildCSV_FormatsRows(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 9, 5, 0, 0, time.Local)
	checkOut := time.Date(2026, 3, 16, 17, 25, 0, 0, time.Local)

	records := []attendance.Attendance{
		{
			UserName:     strPtr("Jordan Lee"),
			EmployeeCode: strPtr("EMP0007"),
			Department:   strPtr("Engineering"),
			Date:         time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local),
			CheckInTime:  &checkIn,
			CheckOutTime: &checkOut,
			TotalHours:   8.33,
			Status:       attendance.StatusPresent,
		},
	}

	got := BuildCSV(records)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"Jordan Lee","EMP0007","Engineering","16-03-2026","09:05 AM","05:25 PM",8.33,"present"`, lines[1])
}

func TestBuildCSV_OpenRecordHasEmptyCheckOut(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 9, 50, 0, 0, time.Local)

	records := []attendance.Attendance{
		{
			UserName:     strPtr("Sam Park"),
			EmployeeCode: strPtr("EMP0002"),
			Department:   strPtr("Sales"),
			Date:         time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local),
			CheckInTime:  &checkIn,
			Status:       attendance.StatusLate,
		},
	}

	got := BuildCSV(records)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"Sam Park","EMP0002","Sales","16-03-2026","09:50 AM","",0,"late"`, lines[1])
}

func TestBuildCSV_MissingUserDetails(t *testing.T) {
	records := []attendance.Attendance{
		{
			Date:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local),
			Status: attendance.StatusHalfDay,
		},
	}

	got := BuildCSV(records)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"","","","16-03-2026","","",0,"half-day"`, lines[1])
}
