// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Gate applied to every staff-only route.
	StaffAuth gin.HandlerFunc

	// Dashboard endpoints
	GetDashboardStatsHandler gin.HandlerFunc

	// Reservation endpoints
	ListReservationsHandler        gin.HandlerFunc
	ListOverdueReservationsHandler gin.HandlerFunc
	ListPendingCollectionsHandler  gin.HandlerFunc

	HealthCheckHandler gin.HandlerFunc
}
