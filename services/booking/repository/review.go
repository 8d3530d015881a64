package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/database"
	"github.com/ambunet/dispatch/internal/pkg/models"
)

// CreateReview inserts a review for a completed booking owned by the
// given user and recomputes the driver's average rating in the same
// transaction. The unique constraint on booking_id rejects a second
// review.
func (r *BookingRepository) CreateReview(ctx context.Context, review *models.Review, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.StoreFailure("begin transaction", err)
	}
	defer tx.Rollback()

	b, err := r.lockBooking(ctx, tx, review.BookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return apperrors.NotFound("booking %s", review.BookingID)
	}
	if b.Status != models.BookingStatusCompleted {
		return apperrors.Conflict("booking %s is %s, only completed bookings can be reviewed", b.ID, b.Status)
	}

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO reviews (id, booking_id, rating, comment, created_at)
		VALUES (:id, :booking_id, :rating, :comment, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, review); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("booking %s already reviewed", review.BookingID)
		}
		return apperrors.StoreFailure("insert review", err)
	}

	if b.DriverID != nil {
		if err = r.fleet.RecalcDriverRatingTx(ctx, tx, *b.DriverID); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
