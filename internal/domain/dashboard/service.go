package dashboard

import "context"

// DashboardService serves the landing-page aggregates.
type DashboardService interface {
	// GetEmployeeDashboard returns today's record, the current month's
	// stats and the last week of records for one user.
	GetEmployeeDashboard(ctx context.Context, userID string) (EmployeeDashboardResponse, error)

	// GetManagerDashboard returns the team-wide today stats, absent
	// listing, weekly trend and department breakdown.
	GetManagerDashboard(ctx context.Context) (ManagerDashboardResponse, error)
}
