package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Unique indexes
// on plate, license and email back the duplicate-key detection in the
// repositories; the rest serve common list filters.
func EnsureIndexes(ctx context.Context, db *MongoDB) error {
	specs := map[string][]mongo.IndexModel{
		"vehicles": {
			{
				Keys:    bson.D{{Key: "plate", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "type", Value: 1}}},
		},
		"drivers": {
			{
				Keys:    bson.D{{Key: "license", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "expiry", Value: 1}}},
		},
		"trips": {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "vehicle_id", Value: 1}}},
			{Keys: bson.D{{Key: "driver_id", Value: 1}}},
		},
		"maintenance_logs": {
			{Keys: bson.D{{Key: "vehicle_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		"expenses": {
			{Keys: bson.D{{Key: "vehicle", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
