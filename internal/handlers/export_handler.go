package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/services"
)

type ExportHandler struct {
	ExportService *services.ExportService
}

func NewExportHandler(export *services.ExportService) *ExportHandler {
	return &ExportHandler{ExportService: export}
}

// ApplicationsCSV is GET /export/applications.csv
func (h *ExportHandler) ApplicationsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="applications.csv"`)
	c.Status(http.StatusOK)

	err := h.ExportService.ExportApplicationsCSV(c.Request.Context(), middleware.UserID(c), c.Writer)
	if err != nil {
		// Headers are already out; the best we can do is log via gin's
		// error list and cut the stream.
		_ = c.Error(err)
		c.Abort()
	}
}
