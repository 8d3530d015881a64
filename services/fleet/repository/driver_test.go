package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/fleet/repository"
)

func driverProfileColumns() []string {
	return []string{"id", "user_id", "license_no", "is_online", "status", "rating",
		"ambulance_id", "created_at", "updated_at", "full_name", "phone", "vehicle_number"}
}

func TestGetDriverProfile_AmbulanceDerivedFromAssignment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	driverID := uuid.New()
	userID := uuid.New()
	ambulanceID := uuid.New()
	vehicle := "DHK-1234"
	rating := 4.6

	rows := sqlmock.NewRows(driverProfileColumns()).
		AddRow(driverID, userID, "B-7711-KL", true, "active", rating,
			ambulanceID, time.Now(), time.Now(), "Test Driver", "01700000000", vehicle)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN ambulances a ON a.driver_id = d.id")).
		WithArgs(driverID).
		WillReturnRows(rows)

	profile, err := repo.GetDriverProfile(context.Background(), driverID)
	require.NoError(t, err)
	assert.Equal(t, driverID, profile.ID)
	require.NotNil(t, profile.AmbulanceID)
	assert.Equal(t, ambulanceID, *profile.AmbulanceID)
	assert.Equal(t, &vehicle, profile.VehicleNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverProfile_Unassigned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	driverID := uuid.New()

	rows := sqlmock.NewRows(driverProfileColumns()).
		AddRow(driverID, uuid.New(), "B-7711-KL", false, "inactive", nil,
			nil, time.Now(), time.Now(), "Test Driver", "01700000000", nil)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN ambulances a ON a.driver_id = d.id")).
		WithArgs(driverID).
		WillReturnRows(rows)

	profile, err := repo.GetDriverProfile(context.Background(), driverID)
	require.NoError(t, err)
	assert.Nil(t, profile.AmbulanceID)
	assert.Nil(t, profile.VehicleNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailable_ProviderNameFromOrganizations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	providerID := uuid.New()
	providerName := "Mercy Health"
	driverName := "Test Driver"
	driverPhone := "01700000000"

	rows := sqlmock.NewRows(append(ambulanceColumns(), "driver_name", "driver_phone", "provider_name")).
		AddRow(uuid.New(), providerID, "DHK-1234", "Hiace", "ICU", "available",
			23.8103, 90.4125, uuid.New(), time.Now(), time.Now(),
			driverName, driverPhone, providerName)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN organizations o ON a.provider_id = o.id")).
		WithArgs(providerID).
		WillReturnRows(rows)

	ambulances, err := repo.ListAvailable(context.Background(), &providerID)
	require.NoError(t, err)
	require.Len(t, ambulances, 1)
	assert.Equal(t, &providerName, ambulances[0].ProviderName)
	assert.Equal(t, &driverName, ambulances[0].DriverName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverProfile_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewFleetRepository(&models.Config{}, db)

	driverID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN ambulances a ON a.driver_id = d.id")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(driverProfileColumns()))

	_, err := repo.GetDriverProfile(context.Background(), driverID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
