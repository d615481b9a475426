package interfaces

import (
	"context"

	"fleetflow/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleFilter narrows vehicle listings. Zero values match everything.
type VehicleFilter struct {
	Type   models.VehicleType
	Status models.VehicleStatus
	Search string // case-insensitive substring on name or plate
}

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	List(ctx context.Context, filter *VehicleFilter) ([]*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Vehicle identification
	GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error)

	// Status operations
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error
	// UpdateStatusIf flips the status only when the stored status still equals
	// from, and reports whether the write landed. Dispatch relies on this to
	// keep two racing requests from double-booking one vehicle.
	UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to models.VehicleStatus) (bool, error)
	GetAvailable(ctx context.Context) ([]*models.Vehicle, error)

	// Analytics
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error)
}
