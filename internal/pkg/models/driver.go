package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus represents the working state of a driver
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusBusy     DriverStatus = "busy"
	DriverStatusInactive DriverStatus = "inactive"
)

// Driver represents a driver record owned by the fleet registry.
// Driver.ID is the canonical key referenced by bookings; UserID links
// the user profile.
type Driver struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	UserID      uuid.UUID    `json:"user_id" db:"user_id"`
	LicenseNo   string       `json:"license_no" db:"license_no"`
	IsOnline    bool         `json:"is_online" db:"is_online"`
	Status      DriverStatus `json:"status" db:"status"`
	Rating      *float64     `json:"rating,omitempty" db:"rating"`
	AmbulanceID *uuid.UUID   `json:"ambulance_id,omitempty" db:"ambulance_id"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// DriverProfile is a driver joined with user and ambulance display columns
type DriverProfile struct {
	Driver
	FullName      string  `json:"full_name" db:"full_name"`
	Phone         string  `json:"phone" db:"phone"`
	VehicleNumber *string `json:"vehicle_number,omitempty" db:"vehicle_number"`
}

// DriverStatusRequest is the payload for the driver online toggle
type DriverStatusRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
	IsOnline bool      `json:"is_online"`
}

// DriverStatusEvent is the payload published on driver status changes
type DriverStatusEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	IsOnline  bool      `json:"is_online"`
	Timestamp time.Time `json:"timestamp"`
}

// DriverStats aggregates completed bookings for a driver
type DriverStats struct {
	DriverID uuid.UUID `json:"driver_id" db:"driver_id"`
	Earnings float64   `json:"earnings" db:"earnings"`
	Trips    int       `json:"trips" db:"trips"`
}
