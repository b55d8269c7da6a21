package handler

import (
	"net/http"

	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

// DashboardHandler serves the authenticated user's channel dashboard.
type DashboardHandler struct {
	svc usecase.DashboardService
}

func NewDashboardHandler(svc usecase.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /v1/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.ChannelStats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos handles GET /v1/dashboard/videos
func (h *DashboardHandler) Videos(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	videos, err := h.svc.ChannelVideos(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	Success(w, http.StatusOK, videos, "Videos fetched successfully")
}
