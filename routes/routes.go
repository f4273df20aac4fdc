package routes

import (
	"time"

	"management/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the admin overview endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(hb.StaffAuth)
		api.GET("/stats", hb.GetDashboardStatsHandler)
	}
}

// RegisterAdminRoutes sets up the staff-only reservation listings.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin/reservations")
	{
		adminGroup.Use(hb.StaffAuth)
		adminGroup.GET("", hb.ListReservationsHandler)
		adminGroup.GET("/overdue", hb.ListOverdueReservationsHandler)
		adminGroup.GET("/pending", hb.ListPendingCollectionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthCheckHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// allowedOrigins of ["*"] allows any origin.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
