package report

import (
	"context"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
)

// ReportService defines the manager-facing rollup and export operations.
type ReportService interface {
	// ListAttendance lists records across the team. An employee-code
	// filter that resolves to no known user yields an empty page, never
	// the unfiltered set.
	ListAttendance(ctx context.Context, req ListRequest) (ListResponse, error)

	// GetEmployeeAttendance lists one employee's records by user id.
	GetEmployeeAttendance(ctx context.Context, userID string, filter attendance.HistoryFilter) (ListResponse, error)

	// GetTeamSummary aggregates one month per employee.
	GetTeamSummary(ctx context.Context, req TeamSummaryRequest) (TeamSummaryResponse, error)

	// ExportCSV renders matching records as CSV text. The header row is
	// always present, even with zero matches.
	ExportCSV(ctx context.Context, req ExportRequest) (string, error)

	// GetTodayAllStatus partitions all employees into present/absent/late
	// buckets for the current day.
	GetTodayAllStatus(ctx context.Context) (TodayAllStatusResponse, error)
}
