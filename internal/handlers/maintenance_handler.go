package handlers

import (
	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/internal/services"
	"fleetflow/internal/utils"
	"fleetflow/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceHandler struct {
	maintenanceService services.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

func (h *MaintenanceHandler) CreateLog(c *gin.Context) {
	var req validators.MaintenanceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateMaintenanceCreate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	vehicleID, _ := primitive.ObjectIDFromHex(req.VehicleID)

	log := &models.MaintenanceLog{
		VehicleID: vehicleID,
		Type:      req.Type,
		Date:      req.Date,
		Cost:      req.Cost,
		Tech:      req.Tech,
		Notes:     req.Notes,
	}

	created, err := h.maintenanceService.CreateLog(c.Request.Context(), log)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

func (h *MaintenanceHandler) ListLogs(c *gin.Context) {
	filter := &interfaces.MaintenanceFilter{
		Status: models.MaintenanceStatus(c.Query("status")),
	}
	if vehicleID, err := primitive.ObjectIDFromHex(c.Query("vehicle_id")); err == nil {
		filter.VehicleID = &vehicleID
	}

	logs, err := h.maintenanceService.ListLogs(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, logs)
}

func (h *MaintenanceHandler) GetLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	log, err := h.maintenanceService.GetLog(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, log)
}

func (h *MaintenanceHandler) UpdateLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.MaintenanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateMaintenanceUpdate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	log, err := h.maintenanceService.UpdateLog(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, log)
}

func (h *MaintenanceHandler) CompleteLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	log, err := h.maintenanceService.CompleteLog(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, log)
}

func (h *MaintenanceHandler) DeleteLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.maintenanceService.DeleteLog(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "maintenance log deleted")
}
