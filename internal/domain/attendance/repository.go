package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// The store enforces one record per (user_id, date).
type AttendanceRepository interface {
	// CreateIfAbsent inserts the day's record. When a record already exists
	// for (UserID, Date) it returns ErrAlreadyCheckedIn; the unique
	// constraint makes this safe under concurrent check-ins.
	CreateIfAbsent(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a specific user on a
	// specific day, or nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Update persists the checkout fields of an existing record.
	Update(ctx context.Context, att Attendance) error

	// ListByUser retrieves one user's records with pagination, newest first.
	ListByUser(ctx context.Context, userID string, filter HistoryFilter) ([]Attendance, int64, error)

	// ListByUserAndRange retrieves one user's records within [start, end],
	// oldest first, without pagination. Used by the period aggregator.
	ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]Attendance, error)

	// ListByRange retrieves all records within [start, end] without user
	// details. Used by team rollups.
	ListByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// ListByDate retrieves every record for one day with user details.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListForExport retrieves records with user details, newest first,
	// optionally bounded by dates and restricted to the given user ids.
	ListForExport(ctx context.Context, start, end *time.Time, userIDs []string) ([]Attendance, error)

	// ListFiltered retrieves records with user details, paginated, for the
	// manager listing endpoints.
	ListFiltered(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)
}

// ListFilter narrows the manager record listing.
type ListFilter struct {
	UserID    *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *Status
	Page      int
	Limit     int
}
