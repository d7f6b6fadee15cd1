package report

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
)

type stubUserRepository struct {
	byCode    map[string]user.User
	byID      map[string]user.User
	employees []user.User

	codeLookups int
}

func (s *stubUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (s *stubUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepository) GetByEmployeeCode(ctx context.Context, code string) (user.User, error) {
	s.codeLookups++
	if u, ok := s.byCode[code]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return s.employees, nil
}

type stubAttendanceRepository struct {
	records []attendance.Attendance

	listFilteredCalled bool
	lastFilter         attendance.ListFilter
	exportCalled       bool
	exportUserIDs      []string
}

func (s *stubAttendanceRepository) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (s *stubAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (s *stubAttendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	return s.records, int64(len(s.records)), nil
}

func (s *stubAttendanceRepository) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	return s.records, nil
}

func (s *stubAttendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return s.records, nil
}

func (s *stubAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return s.records, nil
}

func (s *stubAttendanceRepository) ListForExport(ctx context.Context, start, end *time.Time, userIDs []string) ([]attendance.Attendance, error) {
	s.exportCalled = true
	s.exportUserIDs = userIDs
	return s.records, nil
}

func (s *stubAttendanceRepository) ListFiltered(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	s.listFilteredCalled = true
	s.lastFilter = filter
	return s.records, int64(len(s.records)), nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestService(attRepo *stubAttendanceRepository, userRepo *stubUserRepository) report.ReportService {
	clock := fixedClock{now: time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportService(attRepo, userRepo, nil, clock, logger)
}

func TestListAttendance_UnknownEmployeeCode(t *testing.T) {
	attRepo := &stubAttendanceRepository{
		records: []attendance.Attendance{{ID: "rec-1", UserID: "u1"}},
	}
	userRepo := &stubUserRepository{}
	svc := newTestService(attRepo, userRepo)

	result, err := svc.ListAttendance(context.Background(), report.ListRequest{
		EmployeeCode: strPtr("EMP9999"),
	})
	require.NoError(t, err)

	// An unfiltered query would have found records; the unknown code must
	// narrow to nothing, not widen to everything.
	assert.Empty(t, result.Records)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.False(t, attRepo.listFilteredCalled)
}

func TestListAttendance_MalformedEmployeeCode(t *testing.T) {
	attRepo := &stubAttendanceRepository{
		records: []attendance.Attendance{{ID: "rec-1", UserID: "u1"}},
	}
	userRepo := &stubUserRepository{}
	svc := newTestService(attRepo, userRepo)

	result, err := svc.ListAttendance(context.Background(), report.ListRequest{
		EmployeeCode: strPtr("'; DROP TABLE users"),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 0, userRepo.codeLookups)
	assert.False(t, attRepo.listFilteredCalled)
}

func TestListAttendance_KnownEmployeeCode(t *testing.T) {
	attRepo := &stubAttendanceRepository{
		records: []attendance.Attendance{{ID: "rec-1", UserID: "u1"}},
	}
	userRepo := &stubUserRepository{
		byCode: map[string]user.User{
			"EMP0001": {ID: "u1", EmployeeCode: "EMP0001", Role: user.RoleEmployee},
		},
	}
	svc := newTestService(attRepo, userRepo)

	result, err := svc.ListAttendance(context.Background(), report.ListRequest{
		EmployeeCode: strPtr("EMP0001"),
	})
	require.NoError(t, err)

	assert.Len(t, result.Records, 1)
	require.NotNil(t, attRepo.lastFilter.UserID)
	assert.Equal(t, "u1", *attRepo.lastFilter.UserID)
}

func TestExportCSV_UnknownEmployeeCode(t *testing.T) {
	attRepo := &stubAttendanceRepository{
		records: []attendance.Attendance{{ID: "rec-1", UserID: "u1"}},
	}
	userRepo := &stubUserRepository{}
	svc := newTestService(attRepo, userRepo)

	csv, err := svc.ExportCSV(context.Background(), report.ExportRequest{
		EmployeeCode: strPtr("EMP9999"),
	})
	require.NoError(t, err)

	assert.Equal(t, BuildCSV(nil), csv)
	assert.False(t, attRepo.exportCalled)
}

func TestExportCSV_AllEmployees(t *testing.T) {
	checkIn := time.Date(2026, 3, 16, 9, 0, 0, 0, time.Local)
	attRepo := &stubAttendanceRepository{
		records: []attendance.Attendance{
			{ID: "rec-1", UserID: "u1", Date: checkIn, CheckInTime: &checkIn, Status: attendance.StatusPresent},
			{ID: "rec-2", UserID: "u2", Date: checkIn, CheckInTime: &checkIn, Status: attendance.StatusLate},
		},
	}
	userRepo := &stubUserRepository{
		employees: []user.User{
			{ID: "u1", Role: user.RoleEmployee},
			{ID: "u2", Role: user.RoleEmployee},
		},
	}
	svc := newTestService(attRepo, userRepo)

	csv, err := svc.ExportCSV(context.Background(), report.ExportRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u2"}, attRepo.exportUserIDs)
	assert.Len(t, strings.Split(csv, "\n"), 3)
}

func TestGetEmployeeAttendance_InvalidUserID(t *testing.T) {
	attRepo := &stubAttendanceRepository{}
	userRepo := &stubUserRepository{}
	svc := newTestService(attRepo, userRepo)

	_, err := svc.GetEmployeeAttendance(context.Background(), "not-a-uuid", attendance.HistoryFilter{})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
