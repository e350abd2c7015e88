package handlers

import (
	"net/http"

	"agencysite/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check made by the health cron.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.CheckedAt.IsZero() && !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "dependencies": status})
}
