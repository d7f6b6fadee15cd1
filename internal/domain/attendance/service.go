package attendance

import (
	"context"
)

// AttendanceService defines the employee-facing attendance operations.
type AttendanceService interface {
	// CheckIn records today's check-in for the user.
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// CheckOut completes today's record and finalizes its status.
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// GetTodayStatus returns today's record, or nil when the user has not
	// checked in yet.
	GetTodayStatus(ctx context.Context, userID string) (*AttendanceResponse, error)

	// GetHistory returns the user's records with pagination.
	GetHistory(ctx context.Context, userID string, filter HistoryFilter) (HistoryResponse, error)

	// GetMonthlySummary aggregates one calendar month for the user.
	GetMonthlySummary(ctx context.Context, userID string, year, month int) (MonthlySummaryResponse, error)
}
