package handler

import (
	"net/http"

	"github.com/qlf-seminar/backend/internal/service"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboardService.Get(r.Context())
	if err != nil {
		writeFailure(w, r, err, "Not found", "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, d)
}
