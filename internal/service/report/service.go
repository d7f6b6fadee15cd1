package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/cache"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

const todaySnapshotTTL = time.Minute

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	cache  *cache.Redis // nil disables caching
	clock  datetime.Clock
	logger *slog.Logger
}

func NewReportService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	redisCache *cache.Redis,
	clock datetime.Clock,
	logger *slog.Logger,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		cache:                redisCache,
		clock:                clock,
		logger:               logger,
	}
}

// ListAttendance implements report.ReportService.
func (s *ReportServiceImpl) ListAttendance(ctx context.Context, req report.ListRequest) (report.ListResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ListResponse{}, err
	}

	filter := attendance.ListFilter{
		Page:  req.Page,
		Limit: req.Limit,
	}

	if req.EmployeeCode != nil && *req.EmployeeCode != "" {
		// Unknown or malformed code filters to nothing, never to everything.
		if !validator.IsValidEmployeeCode(*req.EmployeeCode) {
			return emptyListResponse(req.Page, req.Limit), nil
		}
		userData, err := s.UserRepository.GetByEmployeeCode(ctx, *req.EmployeeCode)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return emptyListResponse(req.Page, req.Limit), nil
			}
			return report.ListResponse{}, err
		}
		filter.UserID = &userData.ID
	}

	if req.StartDate != nil && *req.StartDate != "" {
		if start, ok := validator.IsValidDate(*req.StartDate); ok {
			filter.StartDate = &start
		}
	}
	if req.EndDate != nil && *req.EndDate != "" {
		if end, ok := validator.IsValidDate(*req.EndDate); ok {
			filter.EndDate = &end
		}
	}
	if req.Status != nil && *req.Status != "" {
		status := attendance.Status(*req.Status)
		filter.Status = &status
	}

	records, total, err := s.AttendanceRepository.ListFiltered(ctx, filter)
	if err != nil {
		return report.ListResponse{}, err
	}

	return report.ListResponse{
		Records:    attendance.NewAttendanceResponses(records),
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: int((total + int64(req.Limit) - 1) / int64(req.Limit)),
	}, nil
}

func emptyListResponse(page, limit int) report.ListResponse {
	return report.ListResponse{
		Records: []attendance.AttendanceResponse{},
		Page:    page,
		Limit:   limit,
	}
}

// GetEmployeeAttendance implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeAttendance(ctx context.Context, userID string, filter attendance.HistoryFilter) (report.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.ListResponse{}, err
	}

	// 404 on unknown user rather than an empty history. Ids that cannot
	// be real skip the lookup.
	if !validator.IsValidUUID(userID) {
		return report.ListResponse{}, user.ErrUserNotFound
	}
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return report.ListResponse{}, err
	}

	records, total, err := s.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return report.ListResponse{}, err
	}

	return report.ListResponse{
		Records:    attendance.NewAttendanceResponses(records),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}, nil
}

// GetTeamSummary implements report.ReportService.
func (s *ReportServiceImpl) GetTeamSummary(ctx context.Context, req report.TeamSummaryRequest) (report.TeamSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.TeamSummaryResponse{}, err
	}

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return report.TeamSummaryResponse{}, err
	}

	first, last := datetime.MonthRange(req.Year, time.Month(req.Month))

	records, err := s.AttendanceRepository.ListByRange(ctx, first, last)
	if err != nil {
		return report.TeamSummaryResponse{}, err
	}

	byUser := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	now := s.clock.Now()
	summary := make([]report.EmployeeSummary, 0, len(employees))
	for i := range employees {
		emp := &employees[i]
		summary = append(summary, report.EmployeeSummary{
			Employee:        emp.Public(),
			PeriodAggregate: attendance.Aggregate(byUser[emp.ID], emp.RegisteredAt(), now, first, last),
		})
	}

	return report.TeamSummaryResponse{
		Year:    req.Year,
		Month:   req.Month,
		Summary: summary,
	}, nil
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req report.ExportRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var userIDs []string
	if req.EmployeeCode != nil && *req.EmployeeCode != "" {
		// Unknown or malformed code exports the header only.
		if !validator.IsValidEmployeeCode(*req.EmployeeCode) {
			return BuildCSV(nil), nil
		}
		userData, err := s.UserRepository.GetByEmployeeCode(ctx, *req.EmployeeCode)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return BuildCSV(nil), nil
			}
			return "", err
		}
		userIDs = []string{userData.ID}
	} else {
		employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
		if err != nil {
			return "", err
		}
		userIDs = make([]string, 0, len(employees))
		for _, emp := range employees {
			userIDs = append(userIDs, emp.ID)
		}
	}

	var start, end *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		if v, ok := validator.IsValidDate(*req.StartDate); ok {
			start = &v
		}
	}
	if req.EndDate != nil && *req.EndDate != "" {
		if v, ok := validator.IsValidDate(*req.EndDate); ok {
			end = &v
		}
	}

	records, err := s.AttendanceRepository.ListForExport(ctx, start, end, userIDs)
	if err != nil {
		return "", err
	}

	return BuildCSV(records), nil
}

// GetTodayAllStatus implements report.ReportService.
func (s *ReportServiceImpl) GetTodayAllStatus(ctx context.Context) (report.TodayAllStatusResponse, error) {
	today := datetime.Today(s.clock)
	cacheKey := fmt.Sprintf("attendance:today:%s", today.Format("2006-01-02"))

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
			var resp report.TodayAllStatusResponse
			if err := json.Unmarshal([]byte(raw), &resp); err == nil {
				return resp, nil
			}
		} else if !cache.IsMiss(err) {
			s.logger.Warn("today snapshot cache read failed", "error", err)
		}
	}

	resp, err := s.buildTodaySnapshot(ctx, today)
	if err != nil {
		return report.TodayAllStatusResponse{}, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(raw), todaySnapshotTTL); err != nil {
				s.logger.Warn("today snapshot cache write failed", "error", err)
			}
		}
	}

	return resp, nil
}

func (s *ReportServiceImpl) buildTodaySnapshot(ctx context.Context, today time.Time) (report.TodayAllStatusResponse, error) {
	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return report.TodayAllStatusResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return report.TodayAllStatusResponse{}, err
	}

	byUser := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byUser[rec.UserID] = rec
	}

	resp := report.TodayAllStatusResponse{
		Total:   len(employees),
		Present: []report.TodayEntry{},
		Absent:  []report.TodayEntry{},
		Late:    []report.TodayEntry{},
	}

	for i := range employees {
		emp := &employees[i]
		rec, ok := byUser[emp.ID]
		if !ok {
			resp.Absent = append(resp.Absent, report.TodayEntry{
				Employee: emp.Public(),
				Status:   attendance.StatusAbsent,
			})
			continue
		}

		dto := attendance.NewAttendanceResponse(rec)
		entry := report.TodayEntry{
			Employee: emp.Public(),
			Record:   &dto,
			Status:   rec.Status,
		}
		// Late arrivals appear in both buckets: they are on site today,
		// they just missed the cutoff.
		if rec.Status == attendance.StatusLate {
			resp.Late = append(resp.Late, entry)
		}
		resp.Present = append(resp.Present, entry)
	}

	resp.PresentCount = len(resp.Present)
	resp.AbsentCount = len(resp.Absent)
	resp.LateCount = len(resp.Late)

	return resp, nil
}
