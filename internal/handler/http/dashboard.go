package http

import (
	"net/http"

	"github.com/paielab/paie-gateway/internal/domain/dashboard"
	"github.com/paielab/paie-gateway/internal/handler/http/middleware"
	"github.com/paielab/paie-gateway/internal/handler/http/response"
)

type DashboardHandler interface {
	ContributionRates(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// ContributionRates implements DashboardHandler.
func (h *dashboardHandlerImpl) ContributionRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.dashboardService.ContributionRates(r.Context(), middleware.BearerToken(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}
