package dashboard

import (
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
)

type EmployeeDashboardResponse struct {
	Today            *attendance.AttendanceResponse  `json:"today"`
	MonthStats       attendance.PeriodAggregate      `json:"monthStats"`
	RecentAttendance []attendance.AttendanceResponse `json:"recentAttendance"`
}

type TodayStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
}

// DayTrend is one day in the weekly trend. Absent is measured against the
// number of employees registered on or before that day, not the full
// roster.
type DayTrend struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Day     string `json:"day"`  // Mon, Tue, ...
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
}

type ManagerDashboardResponse struct {
	TotalEmployees  int              `json:"totalEmployees"`
	TodayStats      TodayStats       `json:"todayStats"`
	AbsentEmployees []user.Public    `json:"absentEmployees"`
	WeeklyTrend     []DayTrend       `json:"weeklyTrend"`
	DepartmentStats []DepartmentStat `json:"departmentStats"`
}
