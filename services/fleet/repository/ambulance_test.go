package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/fleet/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func ambulanceColumns() []string {
	return []string{"id", "provider_id", "vehicle_number", "model_name", "ambulance_type",
		"status", "lat", "lng", "driver_id", "created_at", "updated_at"}
}

func TestGetAmbulance_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	ambulanceID := uuid.New()

	rows := sqlmock.NewRows(ambulanceColumns()).
		AddRow(ambulanceID, nil, "DHK-1234", "Hiace", "ICU", "available", 23.8103, 90.4125, nil, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, provider_id, vehicle_number")).
		WithArgs(ambulanceID).
		WillReturnRows(rows)

	ambulance, err := repo.GetAmbulance(context.Background(), ambulanceID)
	assert.NoError(t, err)
	assert.Equal(t, ambulanceID, ambulance.ID)
	assert.Equal(t, models.AmbulanceStatusAvailable, ambulance.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAmbulance_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	ambulanceID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, provider_id, vehicle_number")).
		WithArgs(ambulanceID).
		WillReturnRows(sqlmock.NewRows(ambulanceColumns()))

	_, err := repo.GetAmbulance(context.Background(), ambulanceID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCreateAmbulance_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ambulances")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ambulances_vehicle_number_key"})

	err := repo.CreateAmbulance(context.Background(), &models.Ambulance{VehicleNumber: "DHK-1234"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestSwapAmbulanceStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	ambulanceID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ambulances SET status")).
		WithArgs(models.AmbulanceStatusBusy, sqlmock.AnyArg(), ambulanceID, models.AmbulanceStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SwapAmbulanceStatus(context.Background(), ambulanceID, models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapAmbulanceStatus_StatusMismatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	ambulanceID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ambulances SET status")).
		WithArgs(models.AmbulanceStatusBusy, sqlmock.AnyArg(), ambulanceID, models.AmbulanceStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows := sqlmock.NewRows(ambulanceColumns()).
		AddRow(ambulanceID, nil, "DHK-1234", "Hiace", "ICU", "busy", nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, provider_id, vehicle_number")).
		WithArgs(ambulanceID).
		WillReturnRows(rows)

	err := repo.SwapAmbulanceStatus(context.Background(), ambulanceID, models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestSwapAmbulanceStatus_MissingRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	ambulanceID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ambulances SET status")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, provider_id, vehicle_number")).
		WithArgs(ambulanceID).
		WillReturnRows(sqlmock.NewRows(ambulanceColumns()))

	err := repo.SwapAmbulanceStatus(context.Background(), ambulanceID, models.AmbulanceStatusAvailable, models.AmbulanceStatusBusy)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUpdateAmbulanceLocation_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	ambulanceID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ambulances SET lat")).
		WithArgs(23.8103, 90.4125, sqlmock.AnyArg(), ambulanceID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAmbulanceLocation(context.Background(), ambulanceID, 23.8103, 90.4125)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSetDriverOnline_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM drivers")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("inactive"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET is_online")).
		WithArgs(true, models.DriverStatusActive, sqlmock.AnyArg(), driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetDriverOnline(context.Background(), driverID, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDriverOnline_BusyConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM drivers")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("busy"))
	mock.ExpectRollback()

	err := repo.SetDriverOnline(context.Background(), driverID, false)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}
