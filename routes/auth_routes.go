package routes

import (
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		auth.GET("/me", middleware.AuthRequired(jwtSecret), authHandler.GetMe)
		auth.GET("/users", middleware.AuthRequired(jwtSecret), middleware.AdminRequired(), authHandler.ListUsers)
	}
}
