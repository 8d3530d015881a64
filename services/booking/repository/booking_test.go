package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/booking/mocks"
	"github.com/ambunet/dispatch/services/booking/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func bookingColumns() []string {
	return []string{"id", "user_id", "ambulance_id", "driver_id", "pickup_location", "destination",
		"base_fare", "discount", "final_fare", "status", "created_at", "updated_at"}
}

func bookingRow(b *models.Booking) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns()).
		AddRow(b.ID, b.UserID, b.AmbulanceID, b.DriverID, b.PickupLocation, b.Destination,
			b.BaseFare, b.Discount, b.FinalFare, b.Status, time.Now(), time.Now())
}

func TestCreateBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	ambulanceID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	fleet.EXPECT().
		LockAmbulanceTx(gomock.Any(), gomock.Any(), ambulanceID).
		Return(&models.Ambulance{
			ID:       ambulanceID,
			Status:   models.AmbulanceStatusAvailable,
			DriverID: &driverID,
		}, nil)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	fleet.EXPECT().
		SetAmbulanceStatusTx(gomock.Any(), gomock.Any(), ambulanceID, models.AmbulanceStatusBusy).
		Return(nil)
	mock.ExpectCommit()

	b := &models.Booking{
		UserID:         uuid.New(),
		AmbulanceID:    ambulanceID,
		PickupLocation: "Dhanmondi 27",
		Destination:    "Square Hospital",
		BaseFare:       500,
		FinalFare:      500,
	}

	err := repo.CreateBooking(context.Background(), b)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, &driverID, b.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_BusyAmbulanceRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	ambulanceID := uuid.New()

	mock.ExpectBegin()
	fleet.EXPECT().
		LockAmbulanceTx(gomock.Any(), gomock.Any(), ambulanceID).
		Return(&models.Ambulance{ID: ambulanceID, Status: models.AmbulanceStatusBusy}, nil)
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_InsertFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	ambulanceID := uuid.New()

	mock.ExpectBegin()
	fleet.EXPECT().
		LockAmbulanceTx(gomock.Any(), gomock.Any(), ambulanceID).
		Return(&models.Ambulance{ID: ambulanceID, Status: models.AmbulanceStatusAvailable}, nil)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), &models.Booking{
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreFailure))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	driverID := uuid.New()
	ambulanceID := uuid.New()

	pending := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
		DriverID:    &driverID,
		Status:      models.BookingStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1 FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(pending))
	fleet.EXPECT().
		DriverForAmbulanceTx(gomock.Any(), gomock.Any(), ambulanceID).
		Return(&driverID, nil)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WithArgs(models.BookingStatusAccepted, sqlmock.AnyArg(), sqlmock.AnyArg(), bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	fleet.EXPECT().
		SetDriverStatusTx(gomock.Any(), gomock.Any(), driverID, models.DriverStatusBusy).
		Return(nil)
	mock.ExpectCommit()

	b, err := repo.AcceptBooking(context.Background(), bookingID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_AlreadyTerminal(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	cancelled := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: uuid.New(),
		Status:      models.BookingStatusCancelled,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(cancelled))
	mock.ExpectRollback()

	_, err := repo.AcceptBooking(context.Background(), bookingID, uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestAcceptBooking_WrongDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	assignedDriver := uuid.New()
	ambulanceID := uuid.New()
	pending := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
		DriverID:    &assignedDriver,
		Status:      models.BookingStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(pending))
	fleet.EXPECT().
		DriverForAmbulanceTx(gomock.Any(), gomock.Any(), ambulanceID).
		Return(&assignedDriver, nil)
	mock.ExpectRollback()

	_, err := repo.AcceptBooking(context.Background(), bookingID, uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestAcceptBooking_AmbulanceReassigned(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	snapshotDriver := uuid.New()
	ambulanceID := uuid.New()
	pending := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
		DriverID:    &snapshotDriver,
		Status:      models.BookingStatusPending,
	}

	// The snapshot names the accepting driver, but the ambulance has
	// since lost its assignment. The live assignment wins.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(pending))
	fleet.EXPECT().
		DriverForAmbulanceTx(gomock.Any(), gomock.Any(), ambulanceID).
		Return(nil, nil)
	mock.ExpectRollback()

	_, err := repo.AcceptBooking(context.Background(), bookingID, snapshotDriver)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteBooking_ReleasesFleet(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	ambulanceID := uuid.New()
	driverID := uuid.New()
	accepted := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
		DriverID:    &driverID,
		Status:      models.BookingStatusAccepted,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(accepted))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	fleet.EXPECT().
		SetAmbulanceStatusTx(gomock.Any(), gomock.Any(), ambulanceID, models.AmbulanceStatusAvailable).
		Return(nil)
	fleet.EXPECT().
		SetDriverStatusTx(gomock.Any(), gomock.Any(), driverID, models.DriverStatusActive).
		Return(nil)
	mock.ExpectCommit()

	b, err := repo.CompleteBooking(context.Background(), bookingID)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteBooking_PendingConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	pending := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: uuid.New(),
		Status:      models.BookingStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(pending))
	mock.ExpectRollback()

	_, err := repo.CompleteBooking(context.Background(), bookingID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCancelBooking_PendingWithoutDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	ambulanceID := uuid.New()
	pending := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: ambulanceID,
		Status:      models.BookingStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(pending))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	fleet.EXPECT().
		SetAmbulanceStatusTx(gomock.Any(), gomock.Any(), ambulanceID, models.AmbulanceStatusAvailable).
		Return(nil)
	mock.ExpectCommit()

	b, err := repo.CancelBooking(context.Background(), bookingID)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()
	cancelled := &models.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		AmbulanceID: uuid.New(),
		Status:      models.BookingStatusCancelled,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(bookingRow(cancelled))
	mock.ExpectRollback()

	_, err := repo.CancelBooking(context.Background(), bookingID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	bookingID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	_, err := repo.GetBooking(context.Background(), bookingID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDriverStats_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fleet := mocks.NewMockFleetStore(ctrl)
	repo := repository.NewBookingRepository(&models.Config{}, db, fleet)

	driverID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(final_fare), 0)")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"earnings", "trips"}).AddRow(1520.50, 7))

	stats, err := repo.DriverStats(context.Background(), driverID)
	assert.NoError(t, err)
	assert.Equal(t, 1520.50, stats.Earnings)
	assert.Equal(t, 7, stats.Trips)
}
