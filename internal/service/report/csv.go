package report

import (
	"fmt"
	"strings"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
)

const csvHeader = "Employee Name,Employee ID,Department,Date,Check In,Check Out,Total Hours,Status"

// BuildCSV renders records as CSV text. The header row is always emitted,
// so a filter with no matches yields a valid single-line document. Dates
// are DD-MM-YYYY and times 12-hour to match the report spreadsheets.
func BuildCSV(records []attendance.Attendance) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvHeader)

	for _, rec := range records {
		name, code, dept := "", "", ""
		if rec.UserName != nil {
			name = *rec.UserName
		}
		if rec.EmployeeCode != nil {
			code = *rec.EmployeeCode
		}
		if rec.Department != nil {
			dept = *rec.Department
		}

		date := rec.Date.Format("02-01-2006")
		checkIn, checkOut := "", ""
		if rec.CheckInTime != nil {
			checkIn = rec.CheckInTime.Format("03:04 PM")
		}
		if rec.CheckOutTime != nil {
			checkOut = rec.CheckOutTime.Format("03:04 PM")
		}

		lines = append(lines, fmt.Sprintf(`"%s","%s","%s","%s","%s","%s",%g,"%s"`,
			name, code, dept, date, checkIn, checkOut, rec.TotalHours, rec.Status))
	}

	return strings.Join(lines, "\n")
}
