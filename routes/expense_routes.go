package routes

import (
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupExpenseRoutes(r *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler, jwtSecret string) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthRequired(jwtSecret))
	{
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.GET("/summary", expenseHandler.GetSummary)
		expenses.GET("/by-vehicle", expenseHandler.GetByVehicle)
		expenses.GET("/:id", expenseHandler.GetExpense)
		expenses.PUT("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}
