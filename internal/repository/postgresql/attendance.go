package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.user_id, a.date, a.check_in_time, a.check_out_time,
	   a.total_hours, a.status, a.created_at, a.updated_at`

const attendanceJoinColumns = attendanceColumns + `,
	   u.name, u.email, u.employee_code, u.department`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

func scanAttendanceWithUser(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
		&att.UserName, &att.UserEmail, &att.EmployeeCode, &att.Department,
	)
	return att, err
}

// CreateIfAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// ON CONFLICT DO NOTHING: the unique (user_id, date) index decides the
	// winner under concurrent check-ins; losers see zero returned rows.
	query := `
		INSERT INTO attendances (id, user_id, date, check_in_time, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING id, user_id, date, check_in_time, check_out_time,
				  total_hours, status, created_at, updated_at
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.Date,
		att.CheckInTime,
		att.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1, total_hours = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, att.CheckOutTime, att.TotalHours, att.Status, att.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"a.user_id = $1"}
	args := []interface{}{userID}

	if filter.StartDate != nil && *filter.StartDate != "" {
		if start, ok := validator.IsValidDate(*filter.StartDate); ok {
			args = append(args, start)
			conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
		}
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		if end, ok := validator.IsValidDate(*filter.EndDate); ok {
			args = append(args, end)
			conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
		}
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance history: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances a
		WHERE `+where+`
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance history: %w", err)
	}
	defer rows.Close()

	records, err := collectAttendances(rows, scanAttendance)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListByUserAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		  AND a.date >= $2
		  AND a.date <= $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, scanAttendance)
}

// ListByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.date >= $1
		  AND a.date <= $2
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, scanAttendance)
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceJoinColumns + `
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY a.check_in_time ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, scanAttendanceWithUser)
}

// ListForExport implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForExport(ctx context.Context, start, end *time.Time, userIDs []string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if start != nil {
		args = append(args, *start)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if userIDs != nil {
		args = append(args, userIDs)
		conditions = append(conditions, fmt.Sprintf("a.user_id = ANY($%d)", len(args)))
	}

	query := `
		SELECT ` + attendanceJoinColumns + `
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.date DESC, u.employee_code ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for export: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, scanAttendanceWithUser)
}

// ListFiltered implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListFiltered(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered attendance: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := fmt.Sprintf(`
		SELECT `+attendanceJoinColumns+`
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE `+where+`
		ORDER BY a.date DESC, u.employee_code ASC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list filtered attendance: %w", err)
	}
	defer rows.Close()

	records, err := collectAttendances(rows, scanAttendanceWithUser)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func collectAttendances(rows pgx.Rows, scan func(pgx.Row) (attendance.Attendance, error)) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		att, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}
	return records, nil
}
