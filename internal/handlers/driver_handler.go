package handlers

import (
	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/internal/services"
	"fleetflow/internal/utils"
	"fleetflow/internal/validators"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	driverService services.DriverService
}

func NewDriverHandler(driverService services.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req validators.DriverCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateDriverCreate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	driver := &models.Driver{
		Name:     req.Name,
		License:  req.License,
		Expiry:   req.Expiry,
		Category: models.LicenseCategory(req.Category),
		Safety:   req.Safety,
	}

	created, err := h.driverService.RegisterDriver(c.Request.Context(), driver)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

func (h *DriverHandler) ListDrivers(c *gin.Context) {
	filter := &interfaces.DriverFilter{
		Status: models.DriverStatus(c.Query("status")),
		Search: c.Query("search"),
	}

	drivers, err := h.driverService.ListDrivers(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, drivers)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, driver)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.DriverUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateDriverUpdate(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), id, req.ToUpdates())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, driver)
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.driverService.DeleteDriver(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "driver deleted")
}

func (h *DriverHandler) GetAvailableDrivers(c *gin.Context) {
	drivers, err := h.driverService.GetAvailableDrivers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, drivers)
}

func (h *DriverHandler) UpdateDriverStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.DriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateDriverStatus(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	driver, err := h.driverService.SetStatus(c.Request.Context(), id, models.DriverStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, driver)
}

func (h *DriverHandler) GetLicenseAlerts(c *gin.Context) {
	drivers, err := h.driverService.GetLicenseAlerts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, drivers)
}
