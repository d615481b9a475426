package routes

import (
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupDriverRoutes(r *gin.RouterGroup, driverHandler *handlers.DriverHandler, jwtSecret string) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.AuthRequired(jwtSecret))
	{
		drivers.POST("", driverHandler.CreateDriver)
		drivers.GET("", driverHandler.ListDrivers)
		drivers.GET("/available", driverHandler.GetAvailableDrivers)
		drivers.GET("/license-alerts", driverHandler.GetLicenseAlerts)
		drivers.GET("/:id", driverHandler.GetDriver)
		drivers.PUT("/:id", driverHandler.UpdateDriver)
		drivers.PUT("/:id/status", driverHandler.UpdateDriverStatus)
		drivers.DELETE("/:id", driverHandler.DeleteDriver)
	}
}
