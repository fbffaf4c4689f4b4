package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/services"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
	"github.com/jobtrail/jobtrail/pkg/response"
)

type ReminderHandler struct {
	ReminderService *services.ReminderService
}

func NewReminderHandler(reminders *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{ReminderService: reminders}
}

// List is GET /reminders
func (h *ReminderHandler) List(c *gin.Context) {
	reminders, err := h.ReminderService.Upcoming(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reminders)
}

// Complete is POST /reminders/:id/complete
func (h *ReminderHandler) Complete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, apperrors.ReminderNotFound)
		return
	}

	reminder, err := h.ReminderService.Complete(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reminder)
}
