package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/database"
	"github.com/ambunet/dispatch/internal/pkg/models"
)

// FleetRepository owns reads and writes for the ambulances and drivers
// tables. Booking transitions reach these tables through the Tx-scoped
// methods in txstore.go so the registry keeps ownership of the SQL.
type FleetRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(cfg *models.Config, db *sqlx.DB) *FleetRepository {
	return &FleetRepository{
		cfg: cfg,
		db:  db,
	}
}

// ListAvailable returns available ambulances joined with driver and
// provider display columns, optionally scoped to one provider.
func (r *FleetRepository) ListAvailable(ctx context.Context, providerID *uuid.UUID) ([]models.AvailableAmbulance, error) {
	query := `
		SELECT a.id, a.provider_id, a.vehicle_number, a.model_name, a.ambulance_type,
			a.status, a.lat, a.lng, a.driver_id, a.created_at, a.updated_at,
			u.full_name AS driver_name, u.phone AS driver_phone, o.name AS provider_name
		FROM ambulances a
		LEFT JOIN drivers d ON a.driver_id = d.id
		LEFT JOIN users u ON d.user_id = u.id
		LEFT JOIN organizations o ON a.provider_id = o.id
		WHERE a.status = 'available'
	`
	args := []interface{}{}
	if providerID != nil {
		query += ` AND a.provider_id = $1`
		args = append(args, *providerID)
	}
	query += ` ORDER BY a.created_at DESC`

	ambulances := []models.AvailableAmbulance{}
	if err := r.db.SelectContext(ctx, &ambulances, query, args...); err != nil {
		return nil, apperrors.StoreFailure("list available ambulances", err)
	}

	return ambulances, nil
}

// FindNearest ranks available ambulances by great-circle distance from
// the caller's coordinate. Rows without a usable coordinate are
// excluded; the acos argument is clamped so a self-distance probe
// cannot produce NaN.
func (r *FleetRepository) FindNearest(ctx context.Context, lat, lng float64, limit int) ([]models.NearestAmbulance, error) {
	query := `
		SELECT id, provider_id, vehicle_number, model_name, ambulance_type,
			status, lat, lng, driver_id, created_at, updated_at,
			(6371 * acos(LEAST(1.0, GREATEST(-1.0,
				cos(radians($1)) * cos(radians(lat)) * cos(radians(lng) - radians($2)) +
				sin(radians($1)) * sin(radians(lat))
			)))) AS distance_km
		FROM ambulances
		WHERE status = 'available'
			AND lat IS NOT NULL AND lng IS NOT NULL
			AND NOT (lat = 0 AND lng = 0)
		ORDER BY distance_km ASC
		LIMIT $3
	`

	ambulances := []models.NearestAmbulance{}
	if err := r.db.SelectContext(ctx, &ambulances, query, lat, lng, limit); err != nil {
		return nil, apperrors.StoreFailure("find nearest ambulances", err)
	}

	return ambulances, nil
}

// CreateAmbulance inserts a new ambulance. Status defaults to
// available unless the record says otherwise.
func (r *FleetRepository) CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	if ambulance.ID == uuid.Nil {
		ambulance.ID = uuid.New()
	}
	if ambulance.Status == "" {
		ambulance.Status = models.AmbulanceStatusAvailable
	}
	now := time.Now().UTC()
	ambulance.CreatedAt = now
	ambulance.UpdatedAt = now

	query := `
		INSERT INTO ambulances (id, provider_id, vehicle_number, model_name, ambulance_type,
			status, lat, lng, driver_id, created_at, updated_at
		) VALUES (:id, :provider_id, :vehicle_number, :model_name, :ambulance_type,
			:status, :lat, :lng, :driver_id, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, ambulance); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("vehicle number %s already registered", ambulance.VehicleNumber)
		}
		return apperrors.StoreFailure("insert ambulance", err)
	}

	return nil
}

// GetAmbulance retrieves an ambulance by ID
func (r *FleetRepository) GetAmbulance(ctx context.Context, ambulanceID uuid.UUID) (*models.Ambulance, error) {
	query := `
		SELECT id, provider_id, vehicle_number, model_name, ambulance_type,
			status, lat, lng, driver_id, created_at, updated_at
		FROM ambulances
		WHERE id = $1
	`

	var ambulance models.Ambulance
	if err := r.db.GetContext(ctx, &ambulance, query, ambulanceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ambulance %s", ambulanceID)
		}
		return nil, apperrors.StoreFailure("get ambulance", err)
	}

	return &ambulance, nil
}

// SwapAmbulanceStatus applies a status write only if the row still
// holds the expected status. Zero rows affected means either the
// ambulance is gone or another writer got there first.
func (r *FleetRepository) SwapAmbulanceStatus(ctx context.Context, ambulanceID uuid.UUID, expected, next models.AmbulanceStatus) error {
	query := `UPDATE ambulances SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, next, time.Now().UTC(), ambulanceID, expected)
	if err != nil {
		return apperrors.StoreFailure("swap ambulance status", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.StoreFailure("swap ambulance status", err)
	}
	if rows == 0 {
		if _, err := r.GetAmbulance(ctx, ambulanceID); err != nil {
			return err
		}
		return apperrors.Conflict("ambulance %s is not %s", ambulanceID, expected)
	}

	return nil
}

// UpdateAmbulanceLocation persists the latest reported coordinate
func (r *FleetRepository) UpdateAmbulanceLocation(ctx context.Context, ambulanceID uuid.UUID, lat, lng float64) error {
	query := `UPDATE ambulances SET lat = $1, lng = $2, updated_at = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, lat, lng, time.Now().UTC(), ambulanceID)
	if err != nil {
		return apperrors.StoreFailure("update ambulance location", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.StoreFailure("update ambulance location", err)
	}
	if rows == 0 {
		return apperrors.NotFound("ambulance %s", ambulanceID)
	}

	return nil
}
