package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"management/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheckHandler(t *testing.T) {
	var storeErr error
	monitor := utils.NewHealthMonitor(utils.PingerFunc(func(context.Context) error { return storeErr }), nil, nil)
	h := &HealthHandler{Monitor: monitor}
	r := gin.New()
	r.GET("/health", h.HealthCheckHandler)

	monitor.Check(context.Background())
	assert.Equal(t, http.StatusOK, get(r, "/health").Code)

	storeErr = errors.New("no reachable servers")
	monitor.Check(context.Background())
	w := get(r, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
