package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/pkg/response"
)

// HealthCheck is GET /health
func HealthCheck(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
