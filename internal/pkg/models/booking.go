package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Booking represents a transport booking owned by the booking coordinator.
// DriverID is a denormalized snapshot of the ambulance's driver, captured
// at creation and confirmed at acceptance.
type Booking struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	UserID         uuid.UUID     `json:"user_id" db:"user_id"`
	AmbulanceID    uuid.UUID     `json:"ambulance_id" db:"ambulance_id"`
	DriverID       *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	PickupLocation string        `json:"pickup_location" db:"pickup_location"`
	Destination    string        `json:"destination" db:"destination"`
	BaseFare       float64       `json:"base_fare" db:"base_fare"`
	Discount       float64       `json:"discount" db:"discount"`
	FinalFare      float64       `json:"final_fare" db:"final_fare"`
	Status         BookingStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest is the payload for creating a booking
type CreateBookingRequest struct {
	UserID         uuid.UUID `json:"user_id"`
	AmbulanceID    uuid.UUID `json:"ambulance_id"`
	PickupLocation string    `json:"pickup_location"`
	Destination    string    `json:"destination"`
	BaseFare       float64   `json:"base_fare"`
}

// AcceptBookingRequest is the payload for a driver accepting a booking
type AcceptBookingRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
}

// BookingEvent is the payload published on booking lifecycle subjects
type BookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	UserID      uuid.UUID     `json:"user_id"`
	AmbulanceID uuid.UUID     `json:"ambulance_id"`
	DriverID    *uuid.UUID    `json:"driver_id,omitempty"`
	Status      BookingStatus `json:"status"`
	OccurredAt  time.Time     `json:"occurred_at"`
}
