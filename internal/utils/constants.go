package utils

import "time"

// Application Constants
const (
	AppName    = "FleetFlow"
	AppVersion = "1.0.0"

	// Authentication
	JWTTokenTTL       = 7 * 24 * time.Hour
	PasswordMinLength = 6
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid email or password"
	ErrInvalidToken       = "invalid token"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
)
