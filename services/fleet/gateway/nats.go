package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/constants"
	"github.com/ambunet/dispatch/internal/pkg/models"
	natspkg "github.com/ambunet/dispatch/internal/pkg/nats"
	"github.com/ambunet/dispatch/services/fleet"
)

// fleetGW publishes fleet registry events to NATS
type fleetGW struct {
	nc *natspkg.Client
}

// NewFleetGW creates a new fleet gateway
func NewFleetGW(nc *natspkg.Client) fleet.FleetGW {
	return &fleetGW{nc: nc}
}

// PublishAmbulanceRegistered announces a newly registered ambulance
func (g *fleetGW) PublishAmbulanceRegistered(ctx context.Context, ambulance *models.Ambulance) error {
	return g.nc.PublishJSON(constants.SubjectAmbulanceRegistered, ambulance)
}

// PublishDriverStatus announces a driver online/offline change
func (g *fleetGW) PublishDriverStatus(ctx context.Context, driverID uuid.UUID, isOnline bool) error {
	event := models.DriverStatusEvent{
		DriverID:  driverID,
		IsOnline:  isOnline,
		Timestamp: time.Now().UTC(),
	}
	return g.nc.PublishJSON(constants.SubjectDriverStatus, event)
}
