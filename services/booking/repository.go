package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// FleetStore is the slice of the fleet registry the coordinator calls
// inside its own transactions. The registry implements it; the
// coordinator never touches ambulance or driver SQL directly.
//
//go:generate mockgen -destination=mocks/mock_fleetstore.go -package=mocks github.com/ambunet/dispatch/services/booking FleetStore
type FleetStore interface {
	LockAmbulanceTx(ctx context.Context, tx *sqlx.Tx, ambulanceID uuid.UUID) (*models.Ambulance, error)
	DriverForAmbulanceTx(ctx context.Context, tx *sqlx.Tx, ambulanceID uuid.UUID) (*uuid.UUID, error)
	SetAmbulanceStatusTx(ctx context.Context, tx *sqlx.Tx, ambulanceID uuid.UUID, status models.AmbulanceStatus) error
	SetDriverStatusTx(ctx context.Context, tx *sqlx.Tx, driverID uuid.UUID, status models.DriverStatus) error
	RecalcDriverRatingTx(ctx context.Context, tx *sqlx.Tx, driverID uuid.UUID) error
}

// AccountStore resolves the discount rate applied at fare computation
//
//go:generate mockgen -destination=mocks/mock_accountstore.go -package=mocks github.com/ambunet/dispatch/services/booking AccountStore
type AccountStore interface {
	GetDiscountRate(ctx context.Context, userID uuid.UUID) (float64, error)
}

// BookingRepo defines data access for bookings and reviews. Lifecycle
// writes run in a single transaction together with the fleet status
// flips they imply.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ambunet/dispatch/services/booking BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	IncomingForDriver(ctx context.Context, driverID uuid.UUID) (*models.Booking, error)
	DriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error)
	AcceptBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	CreateReview(ctx context.Context, review *models.Review, userID uuid.UUID) error
}
