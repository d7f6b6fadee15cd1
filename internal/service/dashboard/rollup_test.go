package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
)

var today = time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)

func employee(id, name, dept string, registered time.Time) user.User {
	return user.User{
		ID:         id,
		Name:       name,
		Email:      name + "@example.com",
		Role:       user.RoleEmployee,
		Department: dept,
		CreatedAt:  registered,
	}
}

func recordFor(userID string, d time.Time, status attendance.Status) attendance.Attendance {
	checkIn := d.Add(9 * time.Hour)
	return attendance.Attendance{UserID: userID, Date: d, CheckInTime: &checkIn, Status: status}
}

func TestRollupToday(t *testing.T) {
	records := []attendance.Attendance{
		recordFor("u1", today, attendance.StatusPresent),
		recordFor("u2", today, attendance.StatusLate),
		recordFor("u3", today, attendance.StatusHalfDay),
	}

	stats, checkedIn := rollupToday(records)

	// Late and half-day still count toward present.
	assert.Equal(t, 3, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.HalfDay)
	assert.Len(t, checkedIn, 3)
	assert.True(t, checkedIn["u2"])
}

func TestAbsentEmployees_SkipsFutureRegistrations(t *testing.T) {
	employees := []user.User{
		employee("u1", "a", "Engineering", today.AddDate(0, -1, 0)),
		employee("u2", "b", "Engineering", today.AddDate(0, 0, 1)), // joins tomorrow
		employee("u3", "c", "Sales", today),
	}
	checkedIn := map[string]bool{"u1": true}

	absent := absentEmployees(employees, checkedIn, today)

	require.Len(t, absent, 1)
	assert.Equal(t, "u3", absent[0].ID)
}

func TestWeeklyTrend(t *testing.T) {
	employees := []user.User{
		employee("u1", "a", "Engineering", today.AddDate(0, -1, 0)),
		employee("u2", "b", "Sales", today.AddDate(0, 0, -2)), // joined mid-week
	}
	weekRecords := []attendance.Attendance{
		recordFor("u1", today.AddDate(0, 0, -2), attendance.StatusPresent),
		recordFor("u1", today, attendance.StatusPresent),
		recordFor("u2", today, attendance.StatusLate),
	}

	trend := weeklyTrend(employees, weekRecords, today)

	require.Len(t, trend, 7)
	assert.Equal(t, today.AddDate(0, 0, -6).Format("2006-01-02"), trend[0].Date)
	assert.Equal(t, today.Format("2006-01-02"), trend[6].Date)

	// Six days ago only u1 was registered and nobody checked in.
	assert.Equal(t, 0, trend[0].Present)
	assert.Equal(t, 1, trend[0].Absent)

	// Two days ago u2 had just joined; u1 checked in.
	assert.Equal(t, 1, trend[4].Present)
	assert.Equal(t, 1, trend[4].Absent)

	// Today both checked in.
	assert.Equal(t, 2, trend[6].Present)
	assert.Equal(t, 0, trend[6].Absent)
}

func TestWeeklyTrend_IgnoresRecordsWithoutCheckIn(t *testing.T) {
	employees := []user.User{
		employee("u1", "a", "Engineering", today.AddDate(0, -1, 0)),
	}
	weekRecords := []attendance.Attendance{
		{UserID: "u1", Date: today, Status: attendance.StatusAbsent},
	}

	trend := weeklyTrend(employees, weekRecords, today)
	assert.Equal(t, 0, trend[6].Present)
}

func TestDepartmentStats(t *testing.T) {
	employees := []user.User{
		employee("u1", "a", "Engineering", today.AddDate(0, -1, 0)),
		employee("u2", "b", "Engineering", today.AddDate(0, -1, 0)),
		employee("u3", "c", "Sales", today.AddDate(0, -1, 0)),
	}
	checkedIn := map[string]bool{"u1": true, "u3": true}

	stats := departmentStats(employees, checkedIn)

	require.Len(t, stats, 2)
	assert.Equal(t, "Engineering", stats[0].Department)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 1, stats[0].Present)
	assert.Equal(t, 1, stats[0].Absent)

	assert.Equal(t, "Sales", stats[1].Department)
	assert.Equal(t, 1, stats[1].Present)
	assert.Equal(t, 0, stats[1].Absent)
}
