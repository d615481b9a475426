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

type driverRepository struct {
	collection *mongo.Collection
}

func NewDriverRepository(db *mongo.Database) interfaces.DriverRepository {
	return &driverRepository{
		collection: db.Collection("drivers"),
	}
}

// Basic CRUD operations
func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	driver.ID = primitive.NewObjectID()
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = time.Now()

	// Normalize license number to uppercase
	driver.License = strings.ToUpper(driver.License)

	_, err := r.collection.InsertOne(ctx, driver)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("license %s: %w", driver.License, models.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create driver: %w", err)
	}

	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("driver %s: %w", id.Hex(), models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &driver, nil
}

func (r *driverRepository) List(ctx context.Context, filter *interfaces.DriverFilter) ([]*models.Driver, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.Search != "" {
			query["$or"] = []bson.M{
				{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
				{"license": bson.M{"$regex": filter.Search, "$options": "i"}},
			}
		}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []*models.Driver
	for cursor.Next(ctx) {
		var driver models.Driver
		if err := cursor.Decode(&driver); err != nil {
			return nil, fmt.Errorf("failed to decode driver: %w", err)
		}
		drivers = append(drivers, &driver)
	}

	return drivers, nil
}

func (r *driverRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	// Normalize license if being updated
	if license, exists := updates["license"]; exists {
		if licenseStr, ok := license.(string); ok {
			updates["license"] = strings.ToUpper(licenseStr)
		}
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("license: %w", models.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update driver: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("driver %s: %w", id.Hex(), models.ErrNotFound)
	}

	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("driver %s: %w", id.Hex(), models.ErrNotFound)
	}

	return nil
}

// Driver identification
func (r *driverRepository) GetByLicense(ctx context.Context, license string) (*models.Driver, error) {
	license = strings.ToUpper(license)

	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"license": license}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("driver with license %s: %w", license, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver by license: %w", err)
	}

	return &driver, nil
}

// Status operations
func (r *driverRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *driverRepository) GetAvailable(ctx context.Context) ([]*models.Driver, error) {
	return r.List(ctx, &interfaces.DriverFilter{Status: models.DriverStatusOffDuty})
}

// Analytics
func (r *driverRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count drivers: %w", err)
	}
	return count, nil
}

func (r *driverRepository) CountByStatus(ctx context.Context, status models.DriverStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count drivers by status: %w", err)
	}
	return count, nil
}
