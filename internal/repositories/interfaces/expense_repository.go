package interfaces

import (
	"context"
	"time"

	"fleetflow/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseFilter narrows expense listings. Zero values match everything.
type ExpenseFilter struct {
	Vehicle   string // exact match on the free-text vehicle name
	Driver    string // exact match on the free-text driver name
	StartDate *time.Time
	EndDate   *time.Time
}

type ExpenseRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*models.Expense, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
