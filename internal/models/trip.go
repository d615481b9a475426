package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripStatus string

const (
	TripStatusDraft      TripStatus = "Draft"
	TripStatusDispatched TripStatus = "Dispatched"
	TripStatusCompleted  TripStatus = "Completed"
	TripStatusCancelled  TripStatus = "Cancelled"
)

// PlaceholderValue marks distance/fuel figures that have not been entered yet.
const PlaceholderValue = "—"

// tripTransitions is the allowed status graph. Completed and Cancelled are
// terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusDraft:      {TripStatusDispatched, TripStatusCancelled},
	TripStatusDispatched: {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:  {},
	TripStatusCancelled:  {},
}

// CanTripTransition reports whether from -> to is a legal move. A same-status
// update is allowed as a field-only no-op.
func CanTripTransition(from, to TripStatus) bool {
	if from == to {
		return true
	}
	for _, s := range tripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

func ValidTripStatus(s TripStatus) bool {
	_, ok := tripTransitions[s]
	return ok
}

type Trip struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID   primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	DriverID    primitive.ObjectID `json:"driver_id" bson:"driver_id" validate:"required"`
	Cargo       float64            `json:"cargo" bson:"cargo" validate:"required"`
	Origin      string             `json:"origin" bson:"origin" validate:"required"`
	Destination string             `json:"destination" bson:"destination" validate:"required"`
	Distance    string             `json:"distance" bson:"distance" default:"—"`
	Fuel        string             `json:"fuel" bson:"fuel" default:"—"`
	Status      TripStatus         `json:"status" bson:"status" default:"Draft"`
	Date        time.Time          `json:"date" bson:"date"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
