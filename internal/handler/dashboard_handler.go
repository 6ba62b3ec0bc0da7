package handler

import (
	"healthcare-backend/internal/middleware"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats retrieves the caller-scoped dashboard counts
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}
