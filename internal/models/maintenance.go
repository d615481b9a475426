package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MaintenanceStatus string

const (
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

type MaintenanceLog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	Type      string             `json:"type" bson:"type" validate:"required"`
	Date      time.Time          `json:"date" bson:"date" validate:"required"`
	Cost      float64            `json:"cost" bson:"cost" validate:"gte=0"`
	Tech      string             `json:"tech" bson:"tech" validate:"required"`
	Notes     string             `json:"notes" bson:"notes"`
	Status    MaintenanceStatus  `json:"status" bson:"status" default:"In Progress"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func ValidMaintenanceStatus(s MaintenanceStatus) bool {
	return s == MaintenanceStatusInProgress || s == MaintenanceStatusCompleted
}
