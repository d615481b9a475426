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

type TripHandler struct {
	tripService services.TripService
}

func NewTripHandler(tripService services.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// DispatchTrip creates a trip directly in Dispatched status.
func (h *TripHandler) DispatchTrip(c *gin.Context) {
	var req validators.TripDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateTripDispatch(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	vehicleID, _ := primitive.ObjectIDFromHex(req.VehicleID)
	driverID, _ := primitive.ObjectIDFromHex(req.DriverID)

	trip, err := h.tripService.Dispatch(c.Request.Context(), &services.DispatchRequest{
		VehicleID:    vehicleID,
		DriverID:     driverID,
		Cargo:        req.Cargo,
		Origin:       req.Origin,
		Destination:  req.Destination,
		FuelEstimate: req.FuelEstimate,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, trip)
}

func (h *TripHandler) ListTrips(c *gin.Context) {
	filter := &interfaces.TripFilter{
		Status: models.TripStatus(c.Query("status")),
	}
	if vehicleID, err := primitive.ObjectIDFromHex(c.Query("vehicle_id")); err == nil {
		filter.VehicleID = &vehicleID
	}
	if driverID, err := primitive.ObjectIDFromHex(c.Query("driver_id")); err == nil {
		filter.DriverID = &driverID
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, trips)
}

func (h *TripHandler) GetTrip(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, trip)
}

func (h *TripHandler) UpdateTripStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.TripStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateTripStatus(&req); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.Error())
		return
	}

	trip, err := h.tripService.SetStatus(c.Request.Context(), id, models.TripStatus(req.Status), req.Distance, req.Fuel)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, trip)
}

func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "trip deleted")
}
