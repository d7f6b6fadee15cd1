package dashboard

import (
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
)

// rollupToday tallies one day's records. Late and half-day arrivals still
// count as present: they are on site, just flagged.
func rollupToday(records []attendance.Attendance) (stats dashboard.TodayStats, checkedIn map[string]bool) {
	checkedIn = make(map[string]bool, len(records))
	for _, rec := range records {
		checkedIn[rec.UserID] = true
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
			stats.Present++
		case attendance.StatusHalfDay:
			stats.HalfDay++
			stats.Present++
		}
	}
	return stats, checkedIn
}

// absentEmployees lists employees registered on or before today who have
// no record yet. An employee registered tomorrow is not absent today.
func absentEmployees(employees []user.User, checkedIn map[string]bool, today time.Time) []user.Public {
	today = datetime.DateOnly(today)
	absent := []user.Public{}
	for i := range employees {
		emp := &employees[i]
		if datetime.DateOnly(emp.RegisteredAt()).After(today) {
			continue
		}
		if !checkedIn[emp.ID] {
			absent = append(absent, emp.Public())
		}
	}
	return absent
}

// weeklyTrend builds the last seven days of presence counts, oldest first.
// Each day's absent count is measured against the employees registered by
// that day, so a growing team does not show phantom absences in the past.
func weeklyTrend(employees []user.User, weekRecords []attendance.Attendance, today time.Time) []dashboard.DayTrend {
	today = datetime.DateOnly(today)

	presentByDay := make(map[string]int)
	for _, rec := range weekRecords {
		if rec.CheckInTime == nil {
			continue
		}
		presentByDay[rec.Date.Format("2006-01-02")]++
	}

	trend := make([]dashboard.DayTrend, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")

		registeredByDay := 0
		for j := range employees {
			if !datetime.DateOnly(employees[j].RegisteredAt()).After(day) {
				registeredByDay++
			}
		}

		present := presentByDay[key]
		trend = append(trend, dashboard.DayTrend{
			Date:    key,
			Day:     day.Format("Mon"),
			Present: present,
			Absent:  registeredByDay - present,
		})
	}
	return trend
}

// departmentStats breaks down today's presence per department, in
// first-seen order so the response is stable for a stable roster.
func departmentStats(employees []user.User, checkedIn map[string]bool) []dashboard.DepartmentStat {
	byDept := make(map[string]*dashboard.DepartmentStat)
	order := []string{}
	for i := range employees {
		emp := &employees[i]
		stat, ok := byDept[emp.Department]
		if !ok {
			stat = &dashboard.DepartmentStat{Department: emp.Department}
			byDept[emp.Department] = stat
			order = append(order, emp.Department)
		}
		stat.Total++
		if checkedIn[emp.ID] {
			stat.Present++
		}
	}

	stats := make([]dashboard.DepartmentStat, 0, len(order))
	for _, dept := range order {
		stat := byDept[dept]
		stat.Absent = stat.Total - stat.Present
		stats = append(stats, *stat)
	}
	return stats
}
