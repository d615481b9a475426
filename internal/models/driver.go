package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverStatus string

const (
	DriverStatusOnDuty    DriverStatus = "On Duty"
	DriverStatusOffDuty   DriverStatus = "Off Duty"
	DriverStatusSuspended DriverStatus = "Suspended"
)

type LicenseCategory string

const (
	LicenseCategoryLMV   LicenseCategory = "LMV"
	LicenseCategoryHMV   LicenseCategory = "HMV"
	LicenseCategoryHPMV  LicenseCategory = "HPMV"
	LicenseCategoryTRANS LicenseCategory = "TRANS"
)

// LicenseAlertWindow is how far ahead of expiry a license counts as expiring soon.
const LicenseAlertWindow = 30 * 24 * time.Hour

type Driver struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name" validate:"required"`
	License   string              `json:"license" bson:"license" validate:"required"`
	Expiry    time.Time           `json:"expiry" bson:"expiry" validate:"required"`
	Category  LicenseCategory     `json:"category" bson:"category" validate:"required"`
	Trips     int                 `json:"trips" bson:"trips"`
	Completed int                 `json:"completed" bson:"completed"`
	Safety    int                 `json:"safety" bson:"safety" default:"95"`
	Status    DriverStatus        `json:"status" bson:"status" default:"Off Duty"`
	VehicleID *primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

func (d *Driver) IsLicenseExpired(now time.Time) bool {
	return d.Expiry.Before(now)
}

// IsLicenseExpiringSoon is true when the license is still valid but inside the
// alert window.
func (d *Driver) IsLicenseExpiringSoon(now time.Time) bool {
	if d.IsLicenseExpired(now) {
		return false
	}
	return d.Expiry.Sub(now) <= LicenseAlertWindow
}

func ValidDriverStatus(s DriverStatus) bool {
	switch s {
	case DriverStatusOnDuty, DriverStatusOffDuty, DriverStatusSuspended:
		return true
	}
	return false
}

func ValidLicenseCategory(c LicenseCategory) bool {
	switch c {
	case LicenseCategoryLMV, LicenseCategoryHMV, LicenseCategoryHPMV, LicenseCategoryTRANS:
		return true
	}
	return false
}
