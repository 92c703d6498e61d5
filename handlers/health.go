package handlers

import (
	"net/http"

	"letsheal/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the last dependency health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	healthy := status.Mongo == nil || *status.Mongo
	for _, ok := range status.Redis {
		healthy = healthy && ok
	}
	code := http.StatusOK
	state := "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "dependencies": status})
}
