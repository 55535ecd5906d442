package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thammasok/user-api/models"
)

// Root serves a plain-text liveness line at GET /.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "User API is running")
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.Success("Service is healthy", gin.H{"status": "ok"}))
}
