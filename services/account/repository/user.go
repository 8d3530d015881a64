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
	"github.com/ambunet/dispatch/internal/pkg/database"
	"github.com/ambunet/dispatch/internal/pkg/models"
)

// AccountRepository owns the users and organizations tables
type AccountRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(cfg *models.Config, db *sqlx.DB) *AccountRepository {
	return &AccountRepository{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `id, full_name, email, password_hash, phone, role, org_id, created_at, updated_at`

// CreateUser inserts a user and, for the driver role, the linked
// driver profile in the same transaction.
func (r *AccountRepository) CreateUser(ctx context.Context, user *models.User, licenseNo string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, full_name, email, password_hash, phone, role, org_id, created_at, updated_at)
		VALUES (:id, :full_name, :email, :password_hash, :phone, :role, :org_id, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("email or phone already registered")
		}
		return apperrors.StoreFailure("insert user", err)
	}

	if user.Role == models.RoleDriver {
		driverQuery := `
			INSERT INTO drivers (id, user_id, license_no, is_online, status, created_at, updated_at)
			VALUES ($1, $2, $3, false, $4, $5, $5)
		`
		if _, err = tx.ExecContext(ctx, driverQuery, uuid.New(), user.ID, licenseNo, models.DriverStatusInactive, now); err != nil {
			if database.IsUniqueViolation(err) {
				return apperrors.Conflict("license %s already registered", licenseNo)
			}
			return apperrors.StoreFailure("insert driver profile", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *AccountRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user %s", email)
		}
		return nil, apperrors.StoreFailure("get user by email", err)
	}

	return &user, nil
}

// GetUser retrieves a user by ID
func (r *AccountRepository) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user %s", userID)
		}
		return nil, apperrors.StoreFailure("get user", err)
	}

	return &user, nil
}

// GetDiscountRate resolves the discount a user's organization grants.
// Users without an organization get zero.
func (r *AccountRepository) GetDiscountRate(ctx context.Context, userID uuid.UUID) (float64, error) {
	var rate float64
	query := `
		SELECT COALESCE(o.discount_rate, 0)
		FROM users u
		LEFT JOIN organizations o ON u.org_id = o.id
		WHERE u.id = $1
	`
	if err := r.db.QueryRowxContext(ctx, query, userID).Scan(&rate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("user %s", userID)
		}
		return 0, apperrors.StoreFailure("get discount rate", err)
	}

	return rate, nil
}
