package interfaces

import (
	"context"

	"fleetflow/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverFilter narrows driver listings. Zero values match everything.
type DriverFilter struct {
	Status models.DriverStatus
	Search string // case-insensitive substring on name or license
}

type DriverRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	List(ctx context.Context, filter *DriverFilter) ([]*models.Driver, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Driver identification
	GetByLicense(ctx context.Context, license string) (*models.Driver, error)

	// Status operations
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error
	GetAvailable(ctx context.Context) ([]*models.Driver, error)

	// Analytics
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.DriverStatus) (int64, error)
}
