package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusOnTrip    VehicleStatus = "On Trip"
	VehicleStatusInShop    VehicleStatus = "In Shop"
	VehicleStatusRetired   VehicleStatus = "Retired"
)

type VehicleType string

const (
	VehicleTypeTruck VehicleType = "Truck"
	VehicleTypeVan   VehicleType = "Van"
	VehicleTypeBike  VehicleType = "Bike"
)

type FuelType string

const (
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeCNG      FuelType = "CNG"
	FuelTypeElectric FuelType = "Electric"
)

type Vehicle struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name            string              `json:"name" bson:"name" validate:"required"`
	Plate           string              `json:"plate" bson:"plate" validate:"required"`
	Type            VehicleType         `json:"type" bson:"type" validate:"required"`
	Capacity        float64             `json:"capacity" bson:"capacity" validate:"required,gt=0"`
	Odometer        float64             `json:"odometer" bson:"odometer"`
	Fuel            FuelType            `json:"fuel" bson:"fuel" default:"Diesel"`
	AcquisitionCost float64             `json:"acquisition_cost" bson:"acquisition_cost"`
	Status          VehicleStatus       `json:"status" bson:"status" default:"Available"`
	DriverID        *primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at"`
}

// IsBusy reports whether the vehicle is held by a trip or a workshop visit.
// On Trip and In Shop are mutually exclusive; the transition layer enforces it.
func (v *Vehicle) IsBusy() bool {
	return v.Status == VehicleStatusOnTrip || v.Status == VehicleStatusInShop
}

func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusRetired:
		return true
	}
	return false
}

func ValidVehicleType(t VehicleType) bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		return true
	}
	return false
}
