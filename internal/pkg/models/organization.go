package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a corporate partner. The email domain is
// unique and drives the discount tier assigned at registration.
type Organization struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	EmailDomain  string    `json:"email_domain" db:"email_domain"`
	DiscountRate float64   `json:"discount_rate" db:"discount_rate"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AddOrganizationRequest is the payload for registering a partner
type AddOrganizationRequest struct {
	Name         string  `json:"name"`
	EmailDomain  string  `json:"email_domain"`
	DiscountRate float64 `json:"discount_rate"`
}
