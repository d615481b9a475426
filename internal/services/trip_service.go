package services

import (
	"context"
	"fmt"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripService interface {
	// Dispatch creates a trip directly in Dispatched status, claiming the
	// vehicle and driver.
	Dispatch(ctx context.Context, request *DispatchRequest) (*models.Trip, error)

	GetTrip(ctx context.Context, id primitive.ObjectID) (*models.Trip, error)
	ListTrips(ctx context.Context, filter *interfaces.TripFilter) ([]*models.Trip, error)

	// SetStatus moves a trip through its status machine and fires the
	// release effects when it reaches a terminal state.
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.TripStatus, distance, fuel string) (*models.Trip, error)

	// DeleteTrip removes a trip. Deleting a dispatched trip releases the
	// vehicle and driver and decrements the driver's trip counter.
	DeleteTrip(ctx context.Context, id primitive.ObjectID) error
}

type DispatchRequest struct {
	VehicleID    primitive.ObjectID
	DriverID     primitive.ObjectID
	Cargo        float64
	Origin       string
	Destination  string
	FuelEstimate string
}

type tripService struct {
	trips   interfaces.TripRepository
	drivers interfaces.DriverRepository
	state   *fleetState
	logger  *logger.Logger
	now     func() time.Time
}

func NewTripService(
	trips interfaces.TripRepository,
	vehicles interfaces.VehicleRepository,
	drivers interfaces.DriverRepository,
	log *logger.Logger,
) TripService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &tripService{
		trips:   trips,
		drivers: drivers,
		state:   newFleetState(vehicles, drivers, log),
		logger:  log,
		now:     time.Now,
	}
}

// checkDispatch runs the dispatch rules in order; the first failing rule wins
// so error messages are deterministic.
func (s *tripService) checkDispatch(vehicle *models.Vehicle, driver *models.Driver, cargo float64) error {
	if vehicle.Status != models.VehicleStatusAvailable {
		return models.Conflict("vehicle not available (status %s)", vehicle.Status)
	}
	if driver.Status == models.DriverStatusOnDuty {
		return models.Conflict("driver already on duty")
	}
	if driver.Status == models.DriverStatusSuspended {
		return models.Conflict("driver suspended")
	}
	if driver.IsLicenseExpired(s.now()) {
		return models.Conflict("license expired")
	}
	if cargo > vehicle.Capacity {
		return models.Conflict("cargo %g exceeds vehicle capacity %g", cargo, vehicle.Capacity)
	}
	return nil
}

func (s *tripService) Dispatch(ctx context.Context, request *DispatchRequest) (*models.Trip, error) {
	vehicle, err := s.state.vehicles.GetByID(ctx, request.VehicleID)
	if err != nil {
		return nil, err
	}
	driver, err := s.drivers.GetByID(ctx, request.DriverID)
	if err != nil {
		return nil, err
	}

	if err := s.checkDispatch(vehicle, driver, request.Cargo); err != nil {
		return nil, err
	}

	if err := s.state.claimForTrip(ctx, vehicle, driver); err != nil {
		return nil, err
	}

	fuel := request.FuelEstimate
	if fuel == "" {
		fuel = models.PlaceholderValue
	}

	trip := &models.Trip{
		VehicleID:   vehicle.ID,
		DriverID:    driver.ID,
		Cargo:       request.Cargo,
		Origin:      request.Origin,
		Destination: request.Destination,
		Fuel:        fuel,
		Status:      models.TripStatusDispatched,
		Date:        s.now(),
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		s.state.unwindClaim(ctx, vehicle.ID)
		return nil, fmt.Errorf("failed to persist trip: %w", err)
	}

	s.logger.WithTripID(trip.ID).WithVehicleID(vehicle.ID).WithDriverID(driver.ID).Info("trip dispatched")
	return trip, nil
}

func (s *tripService) GetTrip(ctx context.Context, id primitive.ObjectID) (*models.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) ListTrips(ctx context.Context, filter *interfaces.TripFilter) ([]*models.Trip, error) {
	return s.trips.List(ctx, filter)
}

func (s *tripService) SetStatus(ctx context.Context, id primitive.ObjectID, status models.TripStatus, distance, fuel string) (*models.Trip, error) {
	if !models.ValidTripStatus(status) {
		return nil, models.Conflict("unknown trip status %q", status)
	}

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTripTransition(trip.Status, status) {
		return nil, models.Conflict("illegal trip status transition %s -> %s", trip.Status, status)
	}

	updates := map[string]interface{}{}
	if distance != "" {
		updates["distance"] = distance
		trip.Distance = distance
	}
	if fuel != "" {
		updates["fuel"] = fuel
		trip.Fuel = fuel
	}

	// Same-status update: fields only, no effects.
	if status == trip.Status {
		if len(updates) > 0 {
			if err := s.trips.Update(ctx, id, updates); err != nil {
				return nil, err
			}
		}
		return trip, nil
	}

	// Draft -> Dispatched goes through the same claim path as a fresh
	// dispatch, so the invariants hold for draft trips too.
	if status == models.TripStatusDispatched {
		vehicle, err := s.state.vehicles.GetByID(ctx, trip.VehicleID)
		if err != nil {
			return nil, err
		}
		driver, err := s.drivers.GetByID(ctx, trip.DriverID)
		if err != nil {
			return nil, err
		}
		if err := s.checkDispatch(vehicle, driver, trip.Cargo); err != nil {
			return nil, err
		}
		if err := s.state.claimForTrip(ctx, vehicle, driver); err != nil {
			return nil, err
		}
	}

	// Release fires only when moving into a terminal state from a different
	// one, and only a dispatched trip holds a claim.
	if status.IsTerminal() && trip.Status == models.TripStatusDispatched {
		if err := s.state.releaseClaim(ctx, trip, status == models.TripStatusCompleted); err != nil {
			return nil, err
		}
	}

	updates["status"] = status
	if err := s.trips.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	trip.Status = status

	s.logger.WithTripID(trip.ID).WithField("status", string(status)).Info("trip status updated")
	return trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, id primitive.ObjectID) error {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if trip.Status == models.TripStatusDispatched {
		if err := s.state.releaseClaim(ctx, trip, false); err != nil {
			return err
		}
		// The dispatch-time counter bump is undone only here, never on
		// cancel. Floored at zero.
		driver, err := s.drivers.GetByID(ctx, trip.DriverID)
		if err == nil {
			trips := driver.Trips - 1
			if trips < 0 {
				trips = 0
			}
			if err := s.drivers.Update(ctx, driver.ID, map[string]interface{}{"trips": trips}); err != nil {
				return err
			}
		}
	}

	if err := s.trips.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithTripID(id).Info("trip deleted")
	return nil
}
