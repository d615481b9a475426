package routes

import (
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMaintenanceRoutes(r *gin.RouterGroup, maintenanceHandler *handlers.MaintenanceHandler, jwtSecret string) {
	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.AuthRequired(jwtSecret))
	{
		maintenance.POST("", maintenanceHandler.CreateLog)
		maintenance.GET("", maintenanceHandler.ListLogs)
		maintenance.GET("/:id", maintenanceHandler.GetLog)
		maintenance.PUT("/:id", maintenanceHandler.UpdateLog)
		maintenance.PUT("/:id/complete", maintenanceHandler.CompleteLog)
		maintenance.DELETE("/:id", maintenanceHandler.DeleteLog)
	}
}
