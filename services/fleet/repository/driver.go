package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
)

// GetDriverProfile retrieves a driver joined with the linked user
// profile and assigned ambulance. All driver lookups go through
// drivers.id; drivers.user_id only links the profile. The ambulance
// assignment lives on ambulances.driver_id, so the ambulance id here
// is derived from the join, never stored on the driver row.
func (r *FleetRepository) GetDriverProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error) {
	query := `
		SELECT d.id, d.user_id, d.license_no, d.is_online, d.status, d.rating,
			a.id AS ambulance_id, d.created_at, d.updated_at,
			u.full_name, u.phone, a.vehicle_number
		FROM drivers d
		JOIN users u ON d.user_id = u.id
		LEFT JOIN ambulances a ON a.driver_id = d.id
		WHERE d.id = $1
	`

	var profile models.DriverProfile
	if err := r.db.GetContext(ctx, &profile, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("driver %s", driverID)
		}
		return nil, apperrors.StoreFailure("get driver profile", err)
	}

	return &profile, nil
}

// SetDriverOnline toggles the driver's online flag and derives the
// status column. A driver mid-trip holds status busy and the toggle is
// rejected; the check and the write share one transaction so a
// concurrent acceptance cannot slip between them.
func (r *FleetRepository) SetDriverOnline(ctx context.Context, driverID uuid.UUID, isOnline bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	var status models.DriverStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM drivers WHERE id = $1 FOR UPDATE`, driverID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("driver %s", driverID)
		}
		return apperrors.StoreFailure("lock driver", err)
	}

	if status == models.DriverStatusBusy {
		return apperrors.Conflict("driver %s is serving a booking", driverID)
	}

	next := models.DriverStatusInactive
	if isOnline {
		next = models.DriverStatusActive
	}

	query := `UPDATE drivers SET is_online = $1, status = $2, updated_at = $3 WHERE id = $4`
	if _, err = tx.ExecContext(ctx, query, isOnline, next, time.Now().UTC(), driverID); err != nil {
		return apperrors.StoreFailure("update driver status", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
