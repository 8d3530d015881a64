package models

import (
	"time"

	"github.com/google/uuid"
)

// AmbulanceStatus represents the availability state of an ambulance
type AmbulanceStatus string

const (
	AmbulanceStatusAvailable AmbulanceStatus = "available"
	AmbulanceStatusBusy      AmbulanceStatus = "busy"
	AmbulanceStatusInactive  AmbulanceStatus = "inactive"
)

// Ambulance represents an ambulance record owned by the fleet registry
type Ambulance struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	ProviderID    *uuid.UUID      `json:"provider_id,omitempty" db:"provider_id"`
	VehicleNumber string          `json:"vehicle_number" db:"vehicle_number"`
	ModelName     string          `json:"model_name" db:"model_name"`
	AmbulanceType string          `json:"ambulance_type" db:"ambulance_type"`
	Status        AmbulanceStatus `json:"status" db:"status"`
	Latitude      *float64        `json:"lat,omitempty" db:"lat"`
	Longitude     *float64        `json:"lng,omitempty" db:"lng"`
	DriverID      *uuid.UUID      `json:"driver_id,omitempty" db:"driver_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// AvailableAmbulance is the listing view row joined with driver and provider data
type AvailableAmbulance struct {
	Ambulance
	DriverName   *string `json:"driver_name,omitempty" db:"driver_name"`
	DriverPhone  *string `json:"driver_phone,omitempty" db:"driver_phone"`
	ProviderName *string `json:"provider_name,omitempty" db:"provider_name"`
}

// NearestAmbulance is an available ambulance ranked by great-circle distance
type NearestAmbulance struct {
	Ambulance
	DistanceKm float64 `json:"distance_km" db:"distance_km"`
}

// RegisterAmbulanceRequest is the payload for registering a new ambulance
type RegisterAmbulanceRequest struct {
	ProviderID    *uuid.UUID `json:"provider_id"`
	VehicleNumber string     `json:"vehicle_number"`
	ModelName     string     `json:"model_name"`
	AmbulanceType string     `json:"ambulance_type"`
	Latitude      *float64   `json:"lat"`
	Longitude     *float64   `json:"lng"`
	DriverID      *uuid.UUID `json:"driver_id"`
}
