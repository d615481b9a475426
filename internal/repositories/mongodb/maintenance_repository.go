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

type maintenanceRepository struct {
	collection *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) interfaces.MaintenanceRepository {
	return &maintenanceRepository{
		collection: db.Collection("maintenance_logs"),
	}
}

// Basic CRUD operations
func (r *maintenanceRepository) Create(ctx context.Context, log *models.MaintenanceLog) error {
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now()
	log.UpdatedAt = time.Now()
	if log.Status == "" {
		log.Status = models.MaintenanceStatusInProgress
	}

	_, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to create maintenance log: %w", err)
	}

	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MaintenanceLog, error) {
	var log models.MaintenanceLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("maintenance log %s: %w", id.Hex(), models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}

	return &log, nil
}

func (r *maintenanceRepository) List(ctx context.Context, filter *interfaces.MaintenanceFilter) ([]*models.MaintenanceLog, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.VehicleID != nil {
			query["vehicle_id"] = *filter.VehicleID
		}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []*models.MaintenanceLog
	for cursor.Next(ctx) {
		var log models.MaintenanceLog
		if err := cursor.Decode(&log); err != nil {
			return nil, fmt.Errorf("failed to decode maintenance log: %w", err)
		}
		logs = append(logs, &log)
	}

	return logs, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance log: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("maintenance log %s: %w", id.Hex(), models.ErrNotFound)
	}

	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete maintenance log: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("maintenance log %s: %w", id.Hex(), models.ErrNotFound)
	}

	return nil
}
