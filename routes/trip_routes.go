package routes

import (
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTripRoutes(r *gin.RouterGroup, tripHandler *handlers.TripHandler, jwtSecret string) {
	trips := r.Group("/trips")
	trips.Use(middleware.AuthRequired(jwtSecret))
	{
		trips.POST("", tripHandler.DispatchTrip)
		trips.GET("", tripHandler.ListTrips)
		trips.GET("/:id", tripHandler.GetTrip)
		trips.PUT("/:id/status", tripHandler.UpdateTripStatus)
		trips.DELETE("/:id", tripHandler.DeleteTrip)
	}
}
