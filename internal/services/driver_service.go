package services

import (
	"context"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverService interface {
	// Basic CRUD operations
	RegisterDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	ListDrivers(ctx context.Context, filter *interfaces.DriverFilter) ([]*models.Driver, error)
	UpdateDriver(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error)

	// DeleteDriver rejects drivers on duty and releases any assigned vehicle.
	DeleteDriver(ctx context.Context, id primitive.ObjectID) error

	// Status operations
	GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) (*models.Driver, error)

	// License alerts
	GetLicenseAlerts(ctx context.Context) ([]*models.Driver, error)
}

type driverService struct {
	drivers  interfaces.DriverRepository
	vehicles interfaces.VehicleRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewDriverService(drivers interfaces.DriverRepository, vehicles interfaces.VehicleRepository, log *logger.Logger) DriverService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &driverService{
		drivers:  drivers,
		vehicles: vehicles,
		logger:   log,
		now:      time.Now,
	}
}

func (s *driverService) RegisterDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	if driver.Status == "" {
		driver.Status = models.DriverStatusOffDuty
	}
	if driver.Safety == 0 {
		driver.Safety = 95
	}

	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.logger.WithDriverID(driver.ID).WithField("license", driver.License).Info("driver registered")
	return driver, nil
}

func (s *driverService) GetDriver(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	return s.drivers.GetByID(ctx, id)
}

func (s *driverService) ListDrivers(ctx context.Context, filter *interfaces.DriverFilter) ([]*models.Driver, error) {
	return s.drivers.List(ctx, filter)
}

func (s *driverService) UpdateDriver(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Driver, error) {
	// Status changes go through SetStatus so vehicle release cannot be
	// bypassed.
	delete(updates, "status")

	if err := s.drivers.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.drivers.GetByID(ctx, id)
}

func (s *driverService) DeleteDriver(ctx context.Context, id primitive.ObjectID) error {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if driver.Status == models.DriverStatusOnDuty {
		return models.Conflict("driver on duty")
	}

	// Detach the vehicle before the driver disappears.
	if driver.VehicleID != nil {
		if err := s.vehicles.Update(ctx, *driver.VehicleID, map[string]interface{}{
			"driver_id": nil,
		}); err != nil {
			return err
		}
	}

	if err := s.drivers.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithDriverID(id).Info("driver deleted")
	return nil
}

// GetAvailableDrivers lists off-duty drivers holding a valid license.
func (s *driverService) GetAvailableDrivers(ctx context.Context) ([]*models.Driver, error) {
	drivers, err := s.drivers.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	valid := make([]*models.Driver, 0, len(drivers))
	for _, d := range drivers {
		if !d.IsLicenseExpired(now) {
			valid = append(valid, d)
		}
	}
	return valid, nil
}

func (s *driverService) SetStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) (*models.Driver, error) {
	if !models.ValidDriverStatus(status) {
		return nil, models.Conflict("unknown driver status %q", status)
	}

	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Coming off duty releases the vehicle.
	if driver.Status == models.DriverStatusOnDuty && status == models.DriverStatusOffDuty && driver.VehicleID != nil {
		if err := s.vehicles.Update(ctx, *driver.VehicleID, map[string]interface{}{
			"driver_id": nil,
			"status":    models.VehicleStatusAvailable,
		}); err != nil {
			return nil, err
		}
		if err := s.drivers.Update(ctx, id, map[string]interface{}{"vehicle_id": nil}); err != nil {
			return nil, err
		}
		driver.VehicleID = nil
	}

	if err := s.drivers.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	driver.Status = status

	s.logger.WithDriverID(id).WithField("status", string(status)).Info("driver status overridden")
	return driver, nil
}

// GetLicenseAlerts lists drivers whose license is expired or expiring within
// the alert window.
func (s *driverService) GetLicenseAlerts(ctx context.Context) ([]*models.Driver, error) {
	drivers, err := s.drivers.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var alerts []*models.Driver
	for _, d := range drivers {
		if d.IsLicenseExpired(now) || d.IsLicenseExpiringSoon(now) {
			alerts = append(alerts, d)
		}
	}
	return alerts, nil
}
