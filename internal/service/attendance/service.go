package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	policy attendance.Policy
	clock  datetime.Clock
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	policy attendance.Policy,
	clock datetime.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		policy:               policy,
		clock:                clock,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now()

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, datetime.DateOnly(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := attendance.CheckIn(existing, userID, now, s.policy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	rec.ID = id.String()

	// The unique (user_id, date) index decides races between two check-ins
	// for the same day; the loser gets ErrAlreadyCheckedIn.
	created, err := s.AttendanceRepository.CreateIfAbsent(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now()

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, datetime.DateOnly(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	updated, err := attendance.CheckOut(*existing, now, s.policy)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, updated); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(updated), nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	rec, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, datetime.Today(s.clock))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*rec)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, userID string, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	records, total, err := s.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	resp := attendance.HistoryResponse{
		Records:    attendance.NewAttendanceResponses(records),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}
	return resp, nil
}

// GetMonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, userID string, year, month int) (attendance.MonthlySummaryResponse, error) {
	req := attendance.MonthlySummaryRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	first, last := datetime.MonthRange(year, time.Month(month))

	records, err := s.AttendanceRepository.ListByUserAndRange(ctx, userID, first, last)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	agg := attendance.Aggregate(records, userData.RegisteredAt(), s.clock.Now(), first, last)

	return attendance.MonthlySummaryResponse{
		PeriodAggregate: agg,
		Records:         attendance.NewAttendanceResponses(records),
	}, nil
}

