package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/services"
	"github.com/jobtrail/jobtrail/pkg/response"
)

type PreferenceHandler struct {
	PreferenceService *services.PreferenceService
}

func NewPreferenceHandler(prefs *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{PreferenceService: prefs}
}

// Get is GET /preferences
func (h *PreferenceHandler) Get(c *gin.Context) {
	pref, err := h.PreferenceService.GetOrCreate(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pref)
}

// Update is PUT /preferences. A changed follow-up window reschedules
// every open follow-up reminder with the new offset.
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req dtos.PreferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	pref, err := h.PreferenceService.Update(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pref)
}
