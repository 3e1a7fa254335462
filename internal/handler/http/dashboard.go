package http

import (
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	dashboardservice "github.com/constructor-app/constructor-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboardservice.DashboardService
}

func NewDashboardHandler(dashboardService dashboardservice.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
