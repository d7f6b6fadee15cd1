package http

import (
	"net/http"

	"github.com/shiftwise/attendance-backend-go/internal/domain/auth"
	"github.com/shiftwise/attendance-backend-go/internal/domain/dashboard"
	"github.com/shiftwise/attendance-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Employee(w http.ResponseWriter, r *http.Request)
	Manager(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Employee implements DashboardHandler.
func (h *dashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Manager implements DashboardHandler.
func (h *dashboardHandlerImpl) Manager(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetManagerDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
