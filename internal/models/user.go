package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleAdmin            UserRole = "admin"
	UserRoleFleetManager     UserRole = "fleet_manager"
	UserRoleDispatcher       UserRole = "dispatcher"
	UserRoleSafetyOfficer    UserRole = "safety_officer"
	UserRoleFinancialAnalyst UserRole = "financial_analyst"
	UserRoleDriver           UserRole = "driver"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Password  string             `json:"-" bson:"password"`
	Role      UserRole           `json:"role" bson:"role" default:"dispatcher"`
	Status    UserStatus         `json:"status" bson:"status" default:"active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleFleetManager, UserRoleDispatcher,
		UserRoleSafetyOfficer, UserRoleFinancialAnalyst, UserRoleDriver:
		return true
	}
	return false
}
