package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetflow/internal/models"
	"fleetflow/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewVehicleRepository(db *mongo.Database, cache CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	// Normalize plate to uppercase
	vehicle.Plate = strings.ToUpper(vehicle.Plate)

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("plate %s: %w", vehicle.Plate, models.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle %s: %w", id.Hex(), models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, filter *interfaces.VehicleFilter) ([]*models.Vehicle, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Type != "" {
			query["type"] = filter.Type
		}
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.Search != "" {
			query["$or"] = []bson.M{
				{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
				{"plate": bson.M{"$regex": filter.Search, "$options": "i"}},
			}
		}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	// Normalize plate if being updated
	if plate, exists := updates["plate"]; exists {
		if plateStr, ok := plate.(string); ok {
			updates["plate"] = strings.ToUpper(plateStr)
		}
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("plate: %w", models.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), models.ErrNotFound)
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), models.ErrNotFound)
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

// Vehicle identification
func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	plate = strings.ToUpper(plate)

	cacheKey := fmt.Sprintf("vehicle_plate_%s", plate)
	if r.cache != nil {
		var vehicle models.Vehicle
		if err := r.cache.Get(ctx, cacheKey, &vehicle); err == nil {
			return &vehicle, nil
		}
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"plate": plate}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle with plate %s: %w", plate, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, vehicle, 30*time.Minute)
	}

	return &vehicle, nil
}

// Status operations
func (r *vehicleRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *vehicleRepository) UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to models.VehicleStatus) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update vehicle status: %w", err)
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return result.ModifiedCount == 1, nil
}

func (r *vehicleRepository) GetAvailable(ctx context.Context) ([]*models.Vehicle, error) {
	return r.List(ctx, &interfaces.VehicleFilter{Status: models.VehicleStatusAvailable})
}

// Analytics
func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

func (r *vehicleRepository) CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles by status: %w", err)
	}
	return count, nil
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, vehicleID string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, fmt.Sprintf("vehicle_%s", vehicleID))
}
