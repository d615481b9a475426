package interfaces

import (
	"context"

	"fleetflow/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripFilter narrows trip listings. Zero values match everything.
type TripFilter struct {
	Status    models.TripStatus
	VehicleID *primitive.ObjectID
	DriverID  *primitive.ObjectID
}

type TripRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Trip, error)
	List(ctx context.Context, filter *TripFilter) ([]*models.Trip, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Analytics
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.TripStatus) (int64, error)
}
