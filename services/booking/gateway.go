package booking

import (
	"context"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// BookingGW defines the booking coordinator's outbound events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ambunet/dispatch/services/booking BookingGW
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishBookingAccepted(ctx context.Context, booking *models.Booking) error
	PublishBookingCompleted(ctx context.Context, booking *models.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *models.Booking) error
	PublishReviewRecorded(ctx context.Context, review *models.Review) error
}
