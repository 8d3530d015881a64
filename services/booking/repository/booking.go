package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/booking"
)

// BookingRepository owns the bookings and reviews tables. Every
// lifecycle write shares one transaction with the fleet status flip it
// implies, so a booking can never reference an ambulance whose status
// disagrees with it.
type BookingRepository struct {
	cfg   *models.Config
	db    *sqlx.DB
	fleet booking.FleetStore
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB, fleet booking.FleetStore) *BookingRepository {
	return &BookingRepository{
		cfg:   cfg,
		db:    db,
		fleet: fleet,
	}
}

const bookingColumns = `id, user_id, ambulance_id, driver_id, pickup_location, destination,
	base_fare, discount, final_fare, status, created_at, updated_at`

// CreateBooking inserts a pending booking and flips its ambulance from
// available to busy in the same transaction. The ambulance row is
// locked first so two requests racing for the same vehicle serialize;
// the loser sees busy and gets a conflict.
func (r *BookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	ambulance, err := r.fleet.LockAmbulanceTx(ctx, tx, b.AmbulanceID)
	if err != nil {
		return err
	}
	if ambulance.Status != models.AmbulanceStatusAvailable {
		return apperrors.Conflict("ambulance %s is %s", ambulance.ID, ambulance.Status)
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.Status = models.BookingStatusPending
	b.DriverID = ambulance.DriverID
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	query := `
		INSERT INTO bookings (id, user_id, ambulance_id, driver_id, pickup_location, destination,
			base_fare, discount, final_fare, status, created_at, updated_at
		) VALUES (:id, :user_id, :ambulance_id, :driver_id, :pickup_location, :destination,
			:base_fare, :discount, :final_fare, :status, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, b); err != nil {
		return apperrors.StoreFailure("insert booking", err)
	}

	if err = r.fleet.SetAmbulanceStatusTx(ctx, tx, b.AmbulanceID, models.AmbulanceStatusBusy); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepository) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &b, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("booking %s", bookingID)
		}
		return nil, apperrors.StoreFailure("get booking", err)
	}

	return &b, nil
}

// ListByUser returns a user's bookings, newest first
func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, apperrors.StoreFailure("list bookings", err)
	}

	return bookings, nil
}

// IncomingForDriver returns the latest pending booking assigned to the
// driver's ambulance, or NotFound when nothing is waiting.
func (r *BookingRepository) IncomingForDriver(ctx context.Context, driverID uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE driver_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`
	if err := r.db.GetContext(ctx, &b, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("no pending booking for driver %s", driverID)
		}
		return nil, apperrors.StoreFailure("get incoming booking", err)
	}

	return &b, nil
}

// DriverStats aggregates a driver's completed bookings
func (r *BookingRepository) DriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverStats, error) {
	stats := models.DriverStats{DriverID: driverID}
	query := `
		SELECT COALESCE(SUM(final_fare), 0) AS earnings, COUNT(*) AS trips
		FROM bookings
		WHERE driver_id = $1 AND status = 'completed'
	`
	if err := r.db.QueryRowxContext(ctx, query, driverID).Scan(&stats.Earnings, &stats.Trips); err != nil {
		return nil, apperrors.StoreFailure("get driver stats", err)
	}

	return &stats, nil
}

// lockBooking loads a booking under a row lock inside tx
func (r *BookingRepository) lockBooking(ctx context.Context, tx *sqlx.Tx, bookingID uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &b, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("booking %s", bookingID)
		}
		return nil, apperrors.StoreFailure("lock booking", err)
	}

	return &b, nil
}

func (r *BookingRepository) setBookingStatus(ctx context.Context, tx *sqlx.Tx, b *models.Booking, status models.BookingStatus) error {
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	query := `UPDATE bookings SET status = $1, driver_id = $2, updated_at = $3 WHERE id = $4`
	if _, err := tx.ExecContext(ctx, query, b.Status, b.DriverID, b.UpdatedAt, b.ID); err != nil {
		return apperrors.StoreFailure("update booking status", err)
	}

	return nil
}

// AcceptBooking moves a pending booking to accepted and marks its
// driver busy. Only the driver currently assigned to the booking's
// ambulance can accept; the assignment is resolved inside the
// transaction rather than trusted from the creation-time snapshot, so
// a reassignment between creation and acceptance is caught here. A
// terminal or already accepted booking yields a conflict.
func (r *BookingRepository) AcceptBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	b, err := r.lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending {
		return nil, apperrors.Conflict("booking %s is %s", b.ID, b.Status)
	}

	assigned, err := r.fleet.DriverForAmbulanceTx(ctx, tx, b.AmbulanceID)
	if err != nil {
		return nil, err
	}
	if assigned == nil || *assigned != driverID {
		return nil, apperrors.Conflict("driver %s is not assigned to ambulance %s", driverID, b.AmbulanceID)
	}

	b.DriverID = &driverID
	if err = r.setBookingStatus(ctx, tx, b, models.BookingStatusAccepted); err != nil {
		return nil, err
	}

	if err = r.fleet.SetDriverStatusTx(ctx, tx, driverID, models.DriverStatusBusy); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return b, nil
}

// CompleteBooking moves an accepted booking to completed and releases
// its ambulance and driver.
func (r *BookingRepository) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	b, err := r.lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusAccepted {
		return nil, apperrors.Conflict("booking %s is %s", b.ID, b.Status)
	}

	if err = r.setBookingStatus(ctx, tx, b, models.BookingStatusCompleted); err != nil {
		return nil, err
	}
	if err = r.releaseFleet(ctx, tx, b); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return b, nil
}

// CancelBooking soft-cancels a pending or accepted booking and releases
// its ambulance and driver. The row stays for history; nothing is
// deleted.
func (r *BookingRepository) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	b, err := r.lockBooking(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, apperrors.Conflict("booking %s is %s", b.ID, b.Status)
	}

	if err = r.setBookingStatus(ctx, tx, b, models.BookingStatusCancelled); err != nil {
		return nil, err
	}
	if err = r.releaseFleet(ctx, tx, b); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return b, nil
}

// releaseFleet returns the booking's ambulance to available and, when a
// driver was assigned, marks the driver active again.
func (r *BookingRepository) releaseFleet(ctx context.Context, tx *sqlx.Tx, b *models.Booking) error {
	if err := r.fleet.SetAmbulanceStatusTx(ctx, tx, b.AmbulanceID, models.AmbulanceStatusAvailable); err != nil {
		return err
	}
	if b.DriverID != nil {
		if err := r.fleet.SetDriverStatusTx(ctx, tx, *b.DriverID, models.DriverStatusActive); err != nil {
			return err
		}
	}

	return nil
}
