package report

import (
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// MANAGER LISTING
// ========================================

type ListRequest struct {
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`
	EmployeeCode *string `json:"employee_id,omitempty"` // ordinal code like EMP0001

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if r.Page == 0 {
		r.Page = 1 // Default page
	}

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if r.Limit == 0 {
		r.Limit = 20 // Default limit
	}
	if r.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if r.Status != nil && *r.Status != "" {
		validStatuses := []string{
			string(attendance.StatusPresent),
			string(attendance.StatusLate),
			string(attendance.StatusHalfDay),
		}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, half-day",
			})
		}
	}

	if r.StartDate != nil && *r.StartDate != "" {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	Records    []attendance.AttendanceResponse `json:"records"`
	Total      int64                           `json:"total"`
	Page       int                             `json:"page"`
	Limit      int                             `json:"limit"`
	TotalPages int                             `json:"totalPages"`
}

// ========================================
// TEAM MONTHLY SUMMARY
// ========================================

type TeamSummaryRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *TeamSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2200",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeSummary struct {
	Employee user.Public `json:"employee"`
	attendance.PeriodAggregate
}

type TeamSummaryResponse struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	Summary []EmployeeSummary `json:"summary"`
}

// ========================================
// CSV EXPORT
// ========================================

type ExportRequest struct {
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	EmployeeCode *string `json:"employee_id,omitempty"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil && *r.StartDate != "" {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// TODAY SNAPSHOT
// ========================================

// TodayEntry is one employee's slot in the today snapshot. Record is nil
// for employees who have not checked in.
type TodayEntry struct {
	Employee user.Public                     `json:"employee"`
	Record   *attendance.AttendanceResponse `json:"record,omitempty"`
	Status   attendance.Status               `json:"status"`
}

type TodayAllStatusResponse struct {
	Total        int          `json:"total"`
	PresentCount int          `json:"presentCount"`
	AbsentCount  int          `json:"absentCount"`
	LateCount    int          `json:"lateCount"`
	Present      []TodayEntry `json:"present"`
	Absent       []TodayEntry `json:"absent"`
	Late         []TodayEntry `json:"late"`
}
