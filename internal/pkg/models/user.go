package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser     = "user"
	RoleDriver   = "driver"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents an account in the system
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	FullName     string     `json:"full_name" db:"full_name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Phone        string     `json:"phone" db:"phone"`
	Role         string     `json:"role" db:"role"`
	OrgID        *uuid.UUID `json:"org_id,omitempty" db:"org_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	// LicenseNo is required when registering with the driver role
	LicenseNo string `json:"license_no,omitempty"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued credential and user summary
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Discount  float64   `json:"discount"`
}
