package interfaces

import (
	"context"

	"fleetflow/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceFilter narrows maintenance listings. Zero values match everything.
type MaintenanceFilter struct {
	Status    models.MaintenanceStatus
	VehicleID *primitive.ObjectID
}

type MaintenanceRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, log *models.MaintenanceLog) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error)
	List(ctx context.Context, filter *MaintenanceFilter) ([]*models.MaintenanceLog, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
