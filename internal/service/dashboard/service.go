package dashboard

import (
	"context"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	clock datetime.Clock
}

func NewDashboardService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	clock datetime.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		clock:                clock,
	}
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, userID string) (dashboard.EmployeeDashboardResponse, error) {
	now := s.clock.Now()
	today := datetime.DateOnly(now)
	first, last := datetime.MonthRange(now.Year(), now.Month())
	weekStart := today.AddDate(0, 0, -6)

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	todayRecord, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	monthRecords, err := s.AttendanceRepository.ListByUserAndRange(ctx, userID, first, last)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	recentRecords, err := s.AttendanceRepository.ListByUserAndRange(ctx, userID, weekStart, today)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}
	// Newest first for the recent list.
	reverse(recentRecords)

	resp := dashboard.EmployeeDashboardResponse{
		MonthStats:       attendance.Aggregate(monthRecords, userData.RegisteredAt(), now, first, last),
		RecentAttendance: attendance.NewAttendanceResponses(recentRecords),
	}
	if todayRecord != nil {
		dto := attendance.NewAttendanceResponse(*todayRecord)
		resp.Today = &dto
	}

	return resp, nil
}

// GetManagerDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetManagerDashboard(ctx context.Context) (dashboard.ManagerDashboardResponse, error) {
	now := s.clock.Now()
	today := datetime.DateOnly(now)
	weekStart := today.AddDate(0, 0, -6)

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, err
	}

	todayRecords, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, err
	}

	weekRecords, err := s.AttendanceRepository.ListByRange(ctx, weekStart, today)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, err
	}

	stats, checkedIn := rollupToday(todayRecords)
	stats.Absent = len(employees) - len(checkedIn)

	return dashboard.ManagerDashboardResponse{
		TotalEmployees:  len(employees),
		TodayStats:      stats,
		AbsentEmployees: absentEmployees(employees, checkedIn, today),
		WeeklyTrend:     weeklyTrend(employees, weekRecords, today),
		DepartmentStats: departmentStats(employees, checkedIn),
	}, nil
}

func reverse(records []attendance.Attendance) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
