package routes

import (
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(r *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler, jwtSecret string) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthRequired(jwtSecret))
	{
		analytics.GET("", analyticsHandler.GetCostReport)
		analytics.GET("/dashboard", analyticsHandler.GetDashboard)
		analytics.GET("/vehicle-roi", analyticsHandler.GetVehicleROI)
	}
}
