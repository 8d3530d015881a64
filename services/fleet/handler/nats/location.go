package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/ambunet/dispatch/internal/pkg/constants"
	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	natspkg "github.com/ambunet/dispatch/internal/pkg/nats"
	"github.com/ambunet/dispatch/services/fleet"
)

// FleetHandler consumes NATS subjects that feed the fleet registry:
// driver location reports and booking lifecycle events that change an
// ambulance's availability.
type FleetHandler struct {
	fleetUC    fleet.FleetUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewFleetHandler creates a new fleet NATS handler
func NewFleetHandler(fleetUC fleet.FleetUC, natsClient *natspkg.Client) *FleetHandler {
	return &FleetHandler{
		fleetUC:    fleetUC,
		natsClient: natsClient,
	}
}

// availabilitySubjects are the booking lifecycle subjects that change
// an ambulance's availability. Creation flips available to busy, so it
// must reconcile the live index just like the terminal transitions.
var availabilitySubjects = []string{
	constants.SubjectBookingCreated,
	constants.SubjectBookingAccepted,
	constants.SubjectBookingCompleted,
	constants.SubjectBookingCancelled,
}

// InitNATSConsumers subscribes to all fleet subjects
func (h *FleetHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectLocationUpdate, "fleet-location", h.handleLocationUpdate)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	for _, subject := range availabilitySubjects {
		sub, err := h.natsClient.QueueSubscribe(subject, "fleet-availability", h.handleBookingEvent)
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	return nil
}

func (h *FleetHandler) handleLocationUpdate(msg *nats.Msg) {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return
	}

	if err := h.fleetUC.TrackLocation(context.Background(), update); err != nil {
		logger.Error("Failed to track location",
			logger.String("ambulance_id", update.AmbulanceID.String()),
			logger.Err(err))
	}
}

// handleBookingEvent reconciles the live index after a booking changes
// an ambulance's availability.
func (h *FleetHandler) handleBookingEvent(msg *nats.Msg) {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal booking event", logger.Err(err))
		return
	}

	if err := h.fleetUC.SyncAvailability(context.Background(), event.AmbulanceID); err != nil {
		logger.Error("Failed to sync ambulance availability",
			logger.String("ambulance_id", event.AmbulanceID.String()),
			logger.String("subject", msg.Subject),
			logger.Err(err))
	}
}
