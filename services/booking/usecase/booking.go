package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/internal/pkg/observability"
	"github.com/ambunet/dispatch/services/booking"
)

// bookingUC implements the booking.BookingUC interface
type bookingUC struct {
	cfg      *models.Config
	repo     booking.BookingRepo
	accounts booking.AccountStore
	gw       booking.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	repo booking.BookingRepo,
	accounts booking.AccountStore,
	gw booking.BookingGW,
) (booking.BookingUC, error) {
	return &bookingUC{
		cfg:      cfg,
		repo:     repo,
		accounts: accounts,
		gw:       gw,
	}, nil
}

// CreateBooking prices and creates a pending booking. The fare is
// locked in at creation from the user's organization discount; later
// rate changes never reprice an existing booking.
func (uc *bookingUC) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.UserID == uuid.Nil {
		return nil, apperrors.InvalidInput("user_id is required")
	}
	if req.AmbulanceID == uuid.Nil {
		return nil, apperrors.InvalidInput("ambulance_id is required")
	}
	if req.PickupLocation == "" || req.Destination == "" {
		return nil, apperrors.InvalidInput("pickup_location and destination are required")
	}

	baseFare := req.BaseFare
	if baseFare <= 0 {
		baseFare = uc.cfg.Booking.DefaultBaseFare
	}

	rate, err := uc.accounts.GetDiscountRate(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if rate < 0 || rate > uc.cfg.Booking.MaxDiscountRate {
		return nil, apperrors.InvalidInput("discount rate %f out of range", rate)
	}

	discount, finalFare := computeFare(baseFare, rate)

	b := &models.Booking{
		UserID:         req.UserID,
		AmbulanceID:    req.AmbulanceID,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		BaseFare:       baseFare,
		Discount:       discount,
		FinalFare:      finalFare,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	observability.BookingsCreated.Inc()
	logger.Info("Created booking",
		logger.String("booking_id", b.ID.String()),
		logger.String("ambulance_id", b.AmbulanceID.String()),
		logger.Float64("final_fare", b.FinalFare))

	if err := uc.gw.PublishBookingCreated(ctx, b); err != nil {
		logger.Warn("Failed to publish booking created event",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
	}

	return b, nil
}

// GetBooking retrieves a booking by ID
func (uc *bookingUC) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return uc.repo.GetBooking(ctx, bookingID)
}

// ListByUser returns a user's booking history
func (uc *bookingUC) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	return uc.repo.ListByUser(ctx, userID)
}

// IncomingForDriver returns the latest pending booking waiting on a driver
func (uc *bookingUC) IncomingForDriver(ctx context.Context, driverID uuid.UUID) (*models.Booking, error) {
	return uc.repo.IncomingForDriver(ctx, driverID)
}

// DriverStats aggregates a driver's completed bookings
func (uc *bookingUC) DriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error) {
	return uc.repo.DriverStats(ctx, driverID)
}

// AcceptBooking moves a pending booking to accepted
func (uc *bookingUC) AcceptBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	if driverID == uuid.Nil {
		return nil, apperrors.InvalidInput("driver_id is required")
	}

	b, err := uc.repo.AcceptBooking(ctx, bookingID, driverID)
	if err != nil {
		uc.countConflict("accept", err)
		return nil, err
	}

	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusAccepted)).Inc()
	uc.publishTransition(ctx, b, uc.gw.PublishBookingAccepted)

	return b, nil
}

// CompleteBooking moves an accepted booking to completed
func (uc *bookingUC) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	b, err := uc.repo.CompleteBooking(ctx, bookingID)
	if err != nil {
		uc.countConflict("complete", err)
		return nil, err
	}

	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusCompleted)).Inc()
	uc.publishTransition(ctx, b, uc.gw.PublishBookingCompleted)

	return b, nil
}

// CancelBooking soft-cancels a non-terminal booking
func (uc *bookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	b, err := uc.repo.CancelBooking(ctx, bookingID)
	if err != nil {
		uc.countConflict("cancel", err)
		return nil, err
	}

	observability.BookingTransitions.WithLabelValues(string(models.BookingStatusCancelled)).Inc()
	uc.publishTransition(ctx, b, uc.gw.PublishBookingCancelled)

	return b, nil
}

// RecordReview stores a rating for the caller's completed booking
func (uc *bookingUC) RecordReview(ctx context.Context, userID uuid.UUID, req models.RecordReviewRequest) (*models.Review, error) {
	if req.BookingID == uuid.Nil {
		return nil, apperrors.InvalidInput("booking_id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}

	review := &models.Review{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := uc.repo.CreateReview(ctx, review, userID); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishReviewRecorded(ctx, review); err != nil {
		logger.Warn("Failed to publish review recorded event",
			logger.String("review_id", review.ID.String()),
			logger.Err(err))
	}

	return review, nil
}

func (uc *bookingUC) countConflict(op string, err error) {
	if apperrors.IsConflict(err) {
		observability.BookingConflicts.WithLabelValues(op).Inc()
	}
}

func (uc *bookingUC) publishTransition(ctx context.Context, b *models.Booking, publish func(context.Context, *models.Booking) error) {
	if err := publish(ctx, b); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", b.ID.String()),
			logger.String("status", string(b.Status)),
			logger.Err(err))
	}
}
