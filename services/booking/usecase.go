package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// BookingUC defines the booking coordinator business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ambunet/dispatch/services/booking BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	IncomingForDriver(ctx context.Context, driverID uuid.UUID) (*models.Booking, error)
	DriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error)
	AcceptBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	RecordReview(ctx context.Context, userID uuid.UUID, req models.RecordReviewRequest) (*models.Review, error)
}
