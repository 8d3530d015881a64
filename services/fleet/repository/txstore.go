package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
)

// Tx-scoped variants used by the booking coordinator. The coordinator
// owns the transaction; the registry keeps ownership of ambulance and
// driver SQL by running these inside it.

// LockAmbulanceTx loads an ambulance under a row lock so the caller
// can flip its status without racing another booking.
func (r *FleetRepository) LockAmbulanceTx(ctx context.Context, tx *sqlx.Tx, ambulanceID uuid.UUID) (*models.Ambulance, error) {
	query := `
		SELECT id, provider_id, vehicle_number, model_name, ambulance_type,
			status, lat, lng, driver_id, created_at, updated_at
		FROM ambulances
		WHERE id = $1
		FOR UPDATE
	`

	var ambulance models.Ambulance
	if err := tx.GetContext(ctx, &ambulance, query, ambulanceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ambulance %s", ambulanceID)
		}
		return nil, apperrors.StoreFailure("lock ambulance", err)
	}

	return &ambulance, nil
}

// SetAmbulanceStatusTx writes the ambulance status inside the caller's
// transaction.
func (r *FleetRepository) SetAmbulanceStatusTx(ctx context.Context, tx *sqlx.Tx, ambulanceID uuid.UUID, status models.AmbulanceStatus) error {
	query := `UPDATE ambulances SET status = $1, updated_at = $2 WHERE id = $3`

	res, err := tx.ExecContext(ctx, query, status, time.Now().UTC(), ambulanceID)
	if err != nil {
		return apperrors.StoreFailure("set ambulance status", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.StoreFailure("set ambulance status", err)
	}
	if rows == 0 {
		return apperrors.NotFound("ambulance %s", ambulanceID)
	}

	return nil
}

// SetDriverStatusTx writes the driver status inside the caller's
// transaction.
func (r *FleetRepository) SetDriverStatusTx(ctx context.Context, tx *sqlx.Tx, driverID uuid.UUID, status models.DriverStatus) error {
	query := `UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`

	res, err := tx.ExecContext(ctx, query, status, time.Now().UTC(), driverID)
	if err != nil {
		return apperrors.StoreFailure("set driver status", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.StoreFailure("set driver status", err)
	}
	if rows == 0 {
		return apperrors.NotFound("driver %s", driverID)
	}

	return nil
}

// DriverForAmbulanceTx resolves the driver assigned to an ambulance
// inside the caller's transaction. Returns nil when the ambulance has
// no driver assigned.
func (r *FleetRepository) DriverForAmbulanceTx(ctx context.Context, tx *sqlx.Tx, ambulanceID uuid.UUID) (*uuid.UUID, error) {
	var driverID *uuid.UUID
	err := tx.QueryRowContext(ctx, `SELECT driver_id FROM ambulances WHERE id = $1`, ambulanceID).Scan(&driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ambulance %s", ambulanceID)
		}
		return nil, apperrors.StoreFailure("resolve ambulance driver", err)
	}

	return driverID, nil
}

// RecalcDriverRatingTx recomputes a driver's average rating from the
// reviews left on their completed bookings, inside the caller's
// transaction.
func (r *FleetRepository) RecalcDriverRatingTx(ctx context.Context, tx *sqlx.Tx, driverID uuid.UUID) error {
	query := `
		UPDATE drivers SET rating = (
			SELECT AVG(rv.rating)
			FROM reviews rv
			JOIN bookings b ON rv.booking_id = b.id
			WHERE b.driver_id = $1
		), updated_at = $2
		WHERE id = $1
	`

	if _, err := tx.ExecContext(ctx, query, driverID, time.Now().UTC()); err != nil {
		return apperrors.StoreFailure("recalculate driver rating", err)
	}

	return nil
}
