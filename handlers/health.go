package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

// Banner handles GET /.
func (HealthHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, "Doctors portal server is running")
}

// GetHealth handles GET /health with the last snapshot taken by the monitor.
func (HealthHandler) GetHealth(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
