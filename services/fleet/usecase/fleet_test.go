package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/fleet/mocks"
)

func newTestConfig() *models.Config {
	return &models.Config{
		Fleet: models.FleetConfig{
			NearestLimit:  5,
			LiveRadiusKm:  10,
			GeoTTLSeconds: 120,
		},
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestFindNearest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	expected := []models.NearestAmbulance{
		{Ambulance: models.Ambulance{ID: uuid.New()}, DistanceKm: 1.2},
		{Ambulance: models.Ambulance{ID: uuid.New()}, DistanceKm: 3.4},
	}

	mockRepo.EXPECT().
		FindNearest(gomock.Any(), 23.8103, 90.4125, 5).
		Return(expected, nil)

	ambulances, err := uc.FindNearest(context.Background(), 23.8103, 90.4125)

	assert.NoError(t, err)
	assert.Equal(t, expected, ambulances)
}

func TestFindNearest_CoordinateOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	_, err = uc.FindNearest(context.Background(), 91.0, 90.4125)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestNearbyLive_DefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	mockGeo.EXPECT().
		Nearby(gomock.Any(), 23.8103, 90.4125, 10.0, 5).
		Return([]models.NearbyAmbulance{}, nil)

	_, err = uc.NearbyLive(context.Background(), 23.8103, 90.4125, 0)

	assert.NoError(t, err)
}

func TestRegisterAmbulance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	req := models.RegisterAmbulanceRequest{
		VehicleNumber: "DHK-1234",
		ModelName:     "Hiace",
		AmbulanceType: "ICU",
		Latitude:      floatPtr(23.8103),
		Longitude:     floatPtr(90.4125),
	}

	mockRepo.EXPECT().
		CreateAmbulance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ambulance *models.Ambulance) error {
			assert.Equal(t, "DHK-1234", ambulance.VehicleNumber)
			assert.Equal(t, models.AmbulanceStatusAvailable, ambulance.Status)
			ambulance.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		PublishAmbulanceRegistered(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGeo.EXPECT().
		UpsertAvailable(gomock.Any(), gomock.Any(), 23.8103, 90.4125).
		Return(nil)

	ambulance, err := uc.RegisterAmbulance(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, ambulance)
	assert.Equal(t, models.AmbulanceStatusAvailable, ambulance.Status)
}

func TestRegisterAmbulance_MissingVehicleNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	_, err = uc.RegisterAmbulance(context.Background(), models.RegisterAmbulanceRequest{})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestRegisterAmbulance_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	req := models.RegisterAmbulanceRequest{VehicleNumber: "DHK-5678"}

	mockRepo.EXPECT().
		CreateAmbulance(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishAmbulanceRegistered(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	ambulance, err := uc.RegisterAmbulance(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, ambulance)
}

func TestSetAmbulanceActive_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	ambulanceID := uuid.New()

	mockRepo.EXPECT().
		SwapAmbulanceStatus(gomock.Any(), ambulanceID, models.AmbulanceStatusInactive, models.AmbulanceStatusAvailable).
		Return(nil)
	mockRepo.EXPECT().
		GetAmbulance(gomock.Any(), ambulanceID).
		Return(&models.Ambulance{
			ID:        ambulanceID,
			Status:    models.AmbulanceStatusAvailable,
			Latitude:  floatPtr(23.8103),
			Longitude: floatPtr(90.4125),
		}, nil)
	mockGeo.EXPECT().
		UpsertAvailable(gomock.Any(), ambulanceID, 23.8103, 90.4125).
		Return(nil)

	err = uc.SetAmbulanceActive(context.Background(), ambulanceID, true)

	assert.NoError(t, err)
}

func TestSetAmbulanceActive_BusyConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	ambulanceID := uuid.New()

	mockRepo.EXPECT().
		SwapAmbulanceStatus(gomock.Any(), ambulanceID, models.AmbulanceStatusAvailable, models.AmbulanceStatusInactive).
		Return(apperrors.Conflict("ambulance %s is not available", ambulanceID))

	err = uc.SetAmbulanceActive(context.Background(), ambulanceID, false)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestToggleDriverOnline_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	driverID := uuid.New()

	mockRepo.EXPECT().
		SetDriverOnline(gomock.Any(), driverID, true).
		Return(nil)
	mockGW.EXPECT().
		PublishDriverStatus(gomock.Any(), driverID, true).
		Return(nil)

	err = uc.ToggleDriverOnline(context.Background(), models.DriverStatusRequest{DriverID: driverID, IsOnline: true})

	assert.NoError(t, err)
}

func TestToggleDriverOnline_BusyDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	driverID := uuid.New()

	mockRepo.EXPECT().
		SetDriverOnline(gomock.Any(), driverID, false).
		Return(apperrors.Conflict("driver %s is serving a booking", driverID))

	err = uc.ToggleDriverOnline(context.Background(), models.DriverStatusRequest{DriverID: driverID})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestTrackLocation_UpdatesAndSyncs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	ambulanceID := uuid.New()
	update := models.LocationUpdate{
		AmbulanceID: ambulanceID,
		Location:    models.Location{Latitude: 23.7806, Longitude: 90.2794},
	}

	mockRepo.EXPECT().
		UpdateAmbulanceLocation(gomock.Any(), ambulanceID, 23.7806, 90.2794).
		Return(nil)
	mockRepo.EXPECT().
		GetAmbulance(gomock.Any(), ambulanceID).
		Return(&models.Ambulance{
			ID:        ambulanceID,
			Status:    models.AmbulanceStatusBusy,
			Latitude:  floatPtr(23.7806),
			Longitude: floatPtr(90.2794),
		}, nil)
	mockGeo.EXPECT().
		Remove(gomock.Any(), ambulanceID).
		Return(nil)

	err = uc.TrackLocation(context.Background(), update)

	assert.NoError(t, err)
}

func TestSyncAvailability_AvailableIsIndexed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	ambulanceID := uuid.New()

	mockRepo.EXPECT().
		GetAmbulance(gomock.Any(), ambulanceID).
		Return(&models.Ambulance{
			ID:        ambulanceID,
			Status:    models.AmbulanceStatusAvailable,
			Latitude:  floatPtr(23.8103),
			Longitude: floatPtr(90.4125),
		}, nil)
	mockGeo.EXPECT().
		UpsertAvailable(gomock.Any(), ambulanceID, 23.8103, 90.4125).
		Return(nil)

	err = uc.SyncAvailability(context.Background(), ambulanceID)

	assert.NoError(t, err)
}

func TestSyncAvailability_MissingCoordinateIsRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockGeo := mocks.NewMockGeoRepo(ctrl)
	mockGW := mocks.NewMockFleetGW(ctrl)

	uc, err := NewFleetUC(newTestConfig(), mockRepo, mockGeo, mockGW)
	require.NoError(t, err)

	ambulanceID := uuid.New()

	mockRepo.EXPECT().
		GetAmbulance(gomock.Any(), ambulanceID).
		Return(&models.Ambulance{ID: ambulanceID, Status: models.AmbulanceStatusAvailable}, nil)
	mockGeo.EXPECT().
		Remove(gomock.Any(), ambulanceID).
		Return(nil)

	err = uc.SyncAvailability(context.Background(), ambulanceID)

	assert.NoError(t, err)
}
