package services

import (
	"context"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleService interface {
	// Basic CRUD operations
	RegisterVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, filter *interfaces.VehicleFilter) ([]*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vehicle, error)

	// DeleteVehicle rejects vehicles on an active trip and releases any
	// assigned driver.
	DeleteVehicle(ctx context.Context, id primitive.ObjectID) error

	// Status operations
	GetAvailableVehicles(ctx context.Context) ([]*models.Vehicle, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) (*models.Vehicle, error)
}

type vehicleService struct {
	vehicles interfaces.VehicleRepository
	drivers  interfaces.DriverRepository
	logger   *logger.Logger
}

func NewVehicleService(vehicles interfaces.VehicleRepository, drivers interfaces.DriverRepository, log *logger.Logger) VehicleService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &vehicleService{
		vehicles: vehicles,
		drivers:  drivers,
		logger:   log,
	}
}

func (s *vehicleService) RegisterVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusAvailable
	}
	if vehicle.Fuel == "" {
		vehicle.Fuel = models.FuelTypeDiesel
	}

	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.WithVehicleID(vehicle.ID).WithField("plate", vehicle.Plate).Info("vehicle registered")
	return vehicle, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter *interfaces.VehicleFilter) ([]*models.Vehicle, error) {
	return s.vehicles.List(ctx, filter)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Vehicle, error) {
	// Status changes go through SetStatus or the transition layer.
	delete(updates, "status")

	if err := s.vehicles.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.vehicles.GetByID(ctx, id)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id primitive.ObjectID) error {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if vehicle.Status == models.VehicleStatusOnTrip {
		return models.Conflict("vehicle on trip")
	}

	// Release the assigned driver before the vehicle disappears.
	if vehicle.DriverID != nil {
		if err := s.drivers.Update(ctx, *vehicle.DriverID, map[string]interface{}{
			"vehicle_id": nil,
			"status":     models.DriverStatusOffDuty,
		}); err != nil {
			return err
		}
	}

	if err := s.vehicles.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithVehicleID(id).Info("vehicle deleted")
	return nil
}

func (s *vehicleService) GetAvailableVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicles.GetAvailable(ctx)
}

func (s *vehicleService) SetStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) (*models.Vehicle, error) {
	if !models.ValidVehicleStatus(status) {
		return nil, models.Conflict("unknown vehicle status %q", status)
	}

	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.vehicles.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	vehicle.Status = status

	s.logger.WithVehicleID(id).WithField("status", string(status)).Info("vehicle status overridden")
	return vehicle, nil
}
