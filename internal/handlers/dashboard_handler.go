package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/services"
	"github.com/jobtrail/jobtrail/pkg/response"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: dashboard}
}

// Summary is GET /dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.DashboardService.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
