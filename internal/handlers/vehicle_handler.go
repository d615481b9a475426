package handlers

import (
	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/internal/services"
	"fleetflow/internal/utils"
	"fleetflow/internal/validators"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateVehicleCreate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	vehicle := &models.Vehicle{
		Name:            req.Name,
		Plate:           req.Plate,
		Type:            models.VehicleType(req.Type),
		Capacity:        req.Capacity,
		Odometer:        req.Odometer,
		Fuel:            models.FuelType(req.Fuel),
		AcquisitionCost: req.AcquisitionCost,
	}

	created, err := h.vehicleService.RegisterVehicle(c.Request.Context(), vehicle)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	filter := &interfaces.VehicleFilter{
		Type:   models.VehicleType(c.Query("type")),
		Status: models.VehicleStatus(c.Query("status")),
		Search: c.Query("search"),
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, vehicles)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateVehicleUpdate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "vehicle deleted")
}

func (h *VehicleHandler) GetAvailableVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAvailableVehicles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, vehicles)
}

func (h *VehicleHandler) UpdateVehicleStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.VehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateVehicleStatus(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	vehicle, err := h.vehicleService.SetStatus(c.Request.Context(), id, models.VehicleStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, vehicle)
}
