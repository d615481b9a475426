package services

import (
	"context"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"
	"fleetflow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceService interface {
	// CreateLog opens a maintenance log and sends the vehicle to the shop.
	CreateLog(ctx context.Context, log *models.MaintenanceLog) (*models.MaintenanceLog, error)

	GetLog(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error)
	ListLogs(ctx context.Context, filter *interfaces.MaintenanceFilter) ([]*models.MaintenanceLog, error)
	UpdateLog(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MaintenanceLog, error)

	// CompleteLog closes the log and releases the vehicle if it is still in
	// the shop. Completing an already-completed log is a no-op.
	CompleteLog(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error)

	// DeleteLog removes the log; deleting an in-progress log releases the
	// vehicle the same way completion does.
	DeleteLog(ctx context.Context, id primitive.ObjectID) error
}

type maintenanceService struct {
	maintenance interfaces.MaintenanceRepository
	state       *fleetState
	logger      *logger.Logger
}

func NewMaintenanceService(
	maintenance interfaces.MaintenanceRepository,
	vehicles interfaces.VehicleRepository,
	drivers interfaces.DriverRepository,
	log *logger.Logger,
) MaintenanceService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &maintenanceService{
		maintenance: maintenance,
		state:       newFleetState(vehicles, drivers, log),
		logger:      log,
	}
}

func (s *maintenanceService) CreateLog(ctx context.Context, log *models.MaintenanceLog) (*models.MaintenanceLog, error) {
	vehicle, err := s.state.vehicles.GetByID(ctx, log.VehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.state.sendToShop(ctx, vehicle); err != nil {
		return nil, err
	}

	log.Status = models.MaintenanceStatusInProgress
	if err := s.maintenance.Create(ctx, log); err != nil {
		return nil, err
	}

	s.logger.WithVehicleID(vehicle.ID).WithField("maintenance_id", log.ID.Hex()).Info("maintenance log opened")
	return log, nil
}

func (s *maintenanceService) GetLog(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error) {
	return s.maintenance.GetByID(ctx, id)
}

func (s *maintenanceService) ListLogs(ctx context.Context, filter *interfaces.MaintenanceFilter) ([]*models.MaintenanceLog, error) {
	return s.maintenance.List(ctx, filter)
}

func (s *maintenanceService) UpdateLog(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.MaintenanceLog, error) {
	// Status changes go through CompleteLog so the vehicle effects cannot be
	// bypassed.
	delete(updates, "status")

	if err := s.maintenance.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.maintenance.GetByID(ctx, id)
}

func (s *maintenanceService) CompleteLog(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error) {
	log, err := s.maintenance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if log.Status == models.MaintenanceStatusCompleted {
		return log, nil
	}

	if err := s.state.releaseFromShop(ctx, log.VehicleID); err != nil {
		return nil, err
	}

	if err := s.maintenance.Update(ctx, id, map[string]interface{}{
		"status": models.MaintenanceStatusCompleted,
	}); err != nil {
		return nil, err
	}
	log.Status = models.MaintenanceStatusCompleted

	s.logger.WithVehicleID(log.VehicleID).WithField("maintenance_id", id.Hex()).Info("maintenance completed")
	return log, nil
}

func (s *maintenanceService) DeleteLog(ctx context.Context, id primitive.ObjectID) error {
	log, err := s.maintenance.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if log.Status == models.MaintenanceStatusInProgress {
		if err := s.state.releaseFromShop(ctx, log.VehicleID); err != nil {
			return err
		}
	}

	if err := s.maintenance.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("maintenance_id", id.Hex()).Info("maintenance log deleted")
	return nil
}
