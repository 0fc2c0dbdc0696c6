package handler

import (
	"net/http"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/ctxkeys"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

type dashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *dashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	overview, err := h.dashboardService.Overview(user.ID, time.Now())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

func (h *dashboardHandler) Charts(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	charts, err := h.dashboardService.Charts(user.ID, time.Now())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, charts)
}
