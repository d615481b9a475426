package services

import (
	"context"
	"fmt"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fleetState owns every cross-entity status effect: claiming a vehicle and
// driver for a trip, releasing them when the trip ends, and moving vehicles in
// and out of the workshop. Keeping the effects here means the mutual
// invariants (one active trip per vehicle, maintenance blocks dispatch) are
// enforced in exactly one place instead of per handler.
type fleetState struct {
	vehicles interfaces.VehicleRepository
	drivers  interfaces.DriverRepository
	logger   *logger.Logger
}

func newFleetState(vehicles interfaces.VehicleRepository, drivers interfaces.DriverRepository, log *logger.Logger) *fleetState {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &fleetState{
		vehicles: vehicles,
		drivers:  drivers,
		logger:   log,
	}
}

// claimForTrip transitions vehicle -> On Trip and driver -> On Duty. The
// vehicle flip is a compare-and-swap on Available, so of two racing dispatch
// requests exactly one wins; the loser gets a conflict.
func (f *fleetState) claimForTrip(ctx context.Context, vehicle *models.Vehicle, driver *models.Driver) error {
	ok, err := f.vehicles.UpdateStatusIf(ctx, vehicle.ID, models.VehicleStatusAvailable, models.VehicleStatusOnTrip)
	if err != nil {
		return fmt.Errorf("failed to claim vehicle: %w", err)
	}
	if !ok {
		return models.Conflict("vehicle not available")
	}

	if err := f.vehicles.Update(ctx, vehicle.ID, map[string]interface{}{
		"driver_id": driver.ID,
	}); err != nil {
		return fmt.Errorf("failed to attach driver to vehicle: %w", err)
	}

	if err := f.drivers.Update(ctx, driver.ID, map[string]interface{}{
		"status":     models.DriverStatusOnDuty,
		"vehicle_id": vehicle.ID,
		"trips":      driver.Trips + 1,
	}); err != nil {
		return fmt.Errorf("failed to put driver on duty: %w", err)
	}

	f.logger.WithVehicleID(vehicle.ID).WithDriverID(driver.ID).Info("vehicle claimed for trip")
	return nil
}

// releaseClaim reverses claimForTrip. The vehicle flip is guarded on On Trip
// so a vehicle that already moved on through another path is left alone.
func (f *fleetState) releaseClaim(ctx context.Context, trip *models.Trip, completed bool) error {
	released, err := f.vehicles.UpdateStatusIf(ctx, trip.VehicleID, models.VehicleStatusOnTrip, models.VehicleStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to release vehicle: %w", err)
	}
	if released {
		if err := f.vehicles.Update(ctx, trip.VehicleID, map[string]interface{}{
			"driver_id": nil,
		}); err != nil {
			return fmt.Errorf("failed to detach driver from vehicle: %w", err)
		}
	}

	driver, err := f.drivers.GetByID(ctx, trip.DriverID)
	if err != nil {
		// Driver may have been deleted since dispatch; the vehicle side is
		// already released.
		f.logger.WithTripID(trip.ID).WithError(err).Warn("driver missing during trip release")
		return nil
	}

	updates := map[string]interface{}{
		"status":     models.DriverStatusOffDuty,
		"vehicle_id": nil,
	}
	if completed {
		updates["completed"] = driver.Completed + 1
	}
	if err := f.drivers.Update(ctx, driver.ID, updates); err != nil {
		return fmt.Errorf("failed to take driver off duty: %w", err)
	}

	f.logger.WithTripID(trip.ID).Info("trip claim released")
	return nil
}

// unwindClaim gives the vehicle back after a failed dispatch. Best effort.
func (f *fleetState) unwindClaim(ctx context.Context, vehicleID primitive.ObjectID) {
	if _, err := f.vehicles.UpdateStatusIf(ctx, vehicleID, models.VehicleStatusOnTrip, models.VehicleStatusAvailable); err != nil {
		f.logger.WithVehicleID(vehicleID).WithError(err).Error("failed to unwind vehicle claim")
	}
}

// sendToShop marks the vehicle In Shop. A vehicle on an active trip cannot be
// sent to maintenance; On Trip and In Shop are mutually exclusive.
func (f *fleetState) sendToShop(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle.Status == models.VehicleStatusOnTrip {
		return models.Conflict("vehicle on trip")
	}
	if vehicle.Status == models.VehicleStatusInShop {
		return nil
	}
	if err := f.vehicles.UpdateStatus(ctx, vehicle.ID, models.VehicleStatusInShop); err != nil {
		return fmt.Errorf("failed to send vehicle to shop: %w", err)
	}

	f.logger.WithVehicleID(vehicle.ID).Info("vehicle sent to shop")
	return nil
}

// releaseFromShop returns the vehicle to Available, but only if it is still
// In Shop at the time of the write.
func (f *fleetState) releaseFromShop(ctx context.Context, vehicleID primitive.ObjectID) error {
	released, err := f.vehicles.UpdateStatusIf(ctx, vehicleID, models.VehicleStatusInShop, models.VehicleStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to release vehicle from shop: %w", err)
	}
	if released {
		f.logger.WithVehicleID(vehicleID).Info("vehicle released from shop")
	}
	return nil
}
