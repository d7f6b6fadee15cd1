package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	TeamSummary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	TodayAll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// List implements ReportHandler.
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := report.ListRequest{}

	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		req.EmployeeCode = &v
	}
	if v := query.Get("start_date"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		req.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			req.Page = page
		}
	}
	if v := query.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			req.Limit = limit
		}
	}

	result, err := h.reportService.ListAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetEmployeeAttendance implements ReportHandler.
func (h *reportHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	filter := historyFilterFromQuery(r)

	result, err := h.reportService.GetEmployeeAttendance(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: result.TotalPages,
	})
}

// TeamSummary implements ReportHandler.
func (h *reportHandlerImpl) TeamSummary(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthFromQuery(r)

	result, err := h.reportService.GetTeamSummary(r.Context(), report.TeamSummaryRequest{
		Year:  year,
		Month: month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{}

	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		req.EmployeeCode = &v
	}
	if v := query.Get("start_date"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		req.EndDate = &v
	}

	csv, err := h.reportService.ExportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "attendance-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

// TodayAll implements ReportHandler.
func (h *reportHandlerImpl) TodayAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetTodayAllStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
