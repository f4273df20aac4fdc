// File: handlers/admin.go
package handlers

import (
	"net/http"
	"time"

	"management/services/admin"
	"management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the staff-only reservation views.
type AdminHandler struct {
	Service  admin.AdminService
	Location *time.Location
}

// NewAdminHandler creates a new AdminHandler. Bare dates in query strings are
// read in loc.
func NewAdminHandler(svc admin.AdminService, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.Local
	}
	return &AdminHandler{Service: svc, Location: loc}
}

// GetDashboardStatsHandler handles GET /api/dashboard/stats.
func (h *AdminHandler) GetDashboardStatsHandler(c *gin.Context) {
	res := h.Service.GetDashboardStats(c.Request.Context())
	if !res.Success {
		getLogger(c).Error("Failed to get dashboard stats", zap.String("error", res.Error))
		failure(c, "Failed to get dashboard stats", res.Error)
		return
	}
	c.JSON(http.StatusOK, toDashboardStatsResponse(res.Data))
}

// ListReservationsHandler handles GET /api/admin/reservations.
func (h *AdminHandler) ListReservationsHandler(c *gin.Context) {
	filters, err := parseReservationFilters(c, h.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	res := h.Service.ListAllReservations(c.Request.Context(), filters)
	if !res.Success {
		getLogger(c).Error("Failed to list reservations", zap.String("error", res.Error))
		failure(c, "Failed to list reservations", res.Error)
		return
	}
	c.JSON(http.StatusOK, toReservationResponses(res.Data))
}

// ListOverdueReservationsHandler handles GET /api/admin/reservations/overdue.
func (h *AdminHandler) ListOverdueReservationsHandler(c *gin.Context) {
	res := h.Service.ListOverdueReservations(c.Request.Context())
	if !res.Success {
		getLogger(c).Error("Failed to list overdue reservations", zap.String("error", res.Error))
		failure(c, "Failed to list overdue reservations", res.Error)
		return
	}
	c.JSON(http.StatusOK, toReservationResponses(res.Data))
}

// ListPendingCollectionsHandler handles GET /api/admin/reservations/pending.
func (h *AdminHandler) ListPendingCollectionsHandler(c *gin.Context) {
	res := h.Service.ListPendingCollections(c.Request.Context())
	if !res.Success {
		getLogger(c).Error("Failed to list pending collections", zap.String("error", res.Error))
		failure(c, "Failed to list pending collections", res.Error)
		return
	}
	c.JSON(http.StatusOK, toReservationResponses(res.Data))
}

func failure(c *gin.Context, message, details string) {
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: message, Error: details})
}
