package handlers

import (
	"net/http"

	"management/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency snapshot.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// HealthCheckHandler handles GET /health. It answers 503 while the
// reservation store is unreachable.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	state := "ok"
	if !status.Store {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "services": status})
}
