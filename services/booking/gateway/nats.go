package gateway

import (
	"context"
	"time"

	"github.com/ambunet/dispatch/internal/pkg/constants"
	"github.com/ambunet/dispatch/internal/pkg/models"
	natspkg "github.com/ambunet/dispatch/internal/pkg/nats"
	"github.com/ambunet/dispatch/services/booking"
)

// bookingGW publishes booking lifecycle events to NATS
type bookingGW struct {
	nc *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(nc *natspkg.Client) booking.BookingGW {
	return &bookingGW{nc: nc}
}

func (g *bookingGW) publish(subject string, b *models.Booking) error {
	event := models.BookingEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		AmbulanceID: b.AmbulanceID,
		DriverID:    b.DriverID,
		Status:      b.Status,
		OccurredAt:  time.Now().UTC(),
	}
	return g.nc.PublishJSON(subject, event)
}

// PublishBookingCreated announces a new pending booking
func (g *bookingGW) PublishBookingCreated(ctx context.Context, b *models.Booking) error {
	return g.publish(constants.SubjectBookingCreated, b)
}

// PublishBookingAccepted announces a driver acceptance
func (g *bookingGW) PublishBookingAccepted(ctx context.Context, b *models.Booking) error {
	return g.publish(constants.SubjectBookingAccepted, b)
}

// PublishBookingCompleted announces a completed trip
func (g *bookingGW) PublishBookingCompleted(ctx context.Context, b *models.Booking) error {
	return g.publish(constants.SubjectBookingCompleted, b)
}

// PublishBookingCancelled announces a cancellation
func (g *bookingGW) PublishBookingCancelled(ctx context.Context, b *models.Booking) error {
	return g.publish(constants.SubjectBookingCancelled, b)
}

// PublishReviewRecorded announces a recorded review
func (g *bookingGW) PublishReviewRecorded(ctx context.Context, review *models.Review) error {
	return g.nc.PublishJSON(constants.SubjectReviewRecorded, review)
}
