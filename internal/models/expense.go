package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a pure ledger row. Driver and vehicle are recorded as free-text
// names, not foreign keys; TripID is an optional weak reference.
type Expense struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	TripID    *primitive.ObjectID `json:"trip_id" bson:"trip_id"`
	Driver    string              `json:"driver" bson:"driver"`
	Vehicle   string              `json:"vehicle" bson:"vehicle"`
	Distance  float64             `json:"distance" bson:"distance" validate:"gte=0"`
	Liters    float64             `json:"liters" bson:"liters" validate:"gte=0"`
	Cost      float64             `json:"cost" bson:"cost" validate:"gte=0"`
	Date      time.Time           `json:"date" bson:"date"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

// FuelEfficiency returns distance per liter and whether it is defined.
func (e *Expense) FuelEfficiency() (float64, bool) {
	if e.Liters <= 0 {
		return 0, false
	}
	return e.Distance / e.Liters, true
}
