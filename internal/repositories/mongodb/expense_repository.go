package mongodb

import (
	"context"
	"fmt"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type expenseRepository struct {
	collection *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) interfaces.ExpenseRepository {
	return &expenseRepository{
		collection: db.Collection("expenses"),
	}
}

// Basic CRUD operations
func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	expense.ID = primitive.NewObjectID()
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, expense)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Expense, error) {
	var expense models.Expense
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("expense %s: %w", id.Hex(), models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context, filter *interfaces.ExpenseFilter) ([]*models.Expense, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Vehicle != "" {
			query["vehicle"] = filter.Vehicle
		}
		if filter.Driver != "" {
			query["driver"] = filter.Driver
		}
		dateRange := bson.M{}
		if filter.StartDate != nil {
			dateRange["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateRange["$lte"] = *filter.EndDate
		}
		if len(dateRange) > 0 {
			query["date"] = dateRange
		}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []*models.Expense
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, fmt.Errorf("failed to decode expense: %w", err)
		}
		expenses = append(expenses, &expense)
	}

	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("expense %s: %w", id.Hex(), models.ErrNotFound)
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("expense %s: %w", id.Hex(), models.ErrNotFound)
	}

	return nil
}
