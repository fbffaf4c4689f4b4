package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/services"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
	"github.com/jobtrail/jobtrail/pkg/response"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: apps}
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ApplicationNotFound
	}
	return uint(id), nil
}

// Create is POST /applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	app, err := h.ApplicationService.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, app)
}

// List is GET /applications?status=...
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.ApplicationService.List(c.Request.Context(), middleware.UserID(c), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, apps)
}

// Get is GET /applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	app, err := h.ApplicationService.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, app)
}

// Update is PUT /applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	app, err := h.ApplicationService.Update(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, app)
}

// Delete is DELETE /applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ApplicationService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateStatus is POST /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, app)
}

// Events is GET /applications/:id/events
func (h *ApplicationHandler) Events(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.ApplicationService.Events(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, events)
}
