package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographical point
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Address   string    `json:"address,omitempty" db:"address"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationUpdate is the payload consumed from the location subject
type LocationUpdate struct {
	AmbulanceID uuid.UUID `json:"ambulance_id"`
	DriverID    uuid.UUID `json:"driver_id"`
	Location    Location  `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// NearbyAmbulance is a live-index row returned from the Redis geo set
type NearbyAmbulance struct {
	AmbulanceID string  `json:"ambulance_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DistanceKm  float64 `json:"distance_km"`
}
