package handlers

import (
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/internal/services"
	"fleetflow/internal/utils"
	"fleetflow/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseHandler struct {
	expenseService services.ExpenseService
}

func NewExpenseHandler(expenseService services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req validators.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateExpenseCreate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	expense := &models.Expense{
		Driver:   req.Driver,
		Vehicle:  req.Vehicle,
		Distance: req.Distance,
		Liters:   req.Liters,
		Cost:     req.Cost,
		Date:     req.Date,
	}
	if req.TripID != "" {
		tripID, _ := primitive.ObjectIDFromHex(req.TripID)
		expense.TripID = &tripID
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}

	created, err := h.expenseService.RecordExpense(c.Request.Context(), expense)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, expenses)
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, expense)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateExpenseUpdate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "expense deleted")
}

func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	summary, err := h.expenseService.Summary(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, summary)
}

func (h *ExpenseHandler) GetByVehicle(c *gin.Context) {
	summaries, err := h.expenseService.ByVehicle(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, summaries)
}

func (h *ExpenseHandler) parseFilter(c *gin.Context) (*interfaces.ExpenseFilter, bool) {
	filter := &interfaces.ExpenseFilter{
		Vehicle: c.Query("vehicle"),
		Driver:  c.Query("driver"),
	}
	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.BadRequestResponse(c, "invalid start_date")
			return nil, false
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.BadRequestResponse(c, "invalid end_date")
			return nil, false
		}
		filter.EndDate = &end
	}
	return filter, true
}
