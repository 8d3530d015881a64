package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/internal/pkg/observability"
	"github.com/ambunet/dispatch/services/fleet"
)

// fleetUC implements the fleet.FleetUC interface
type fleetUC struct {
	cfg     *models.Config
	repo    fleet.FleetRepo
	geoRepo fleet.GeoRepo
	gw      fleet.FleetGW
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(
	cfg *models.Config,
	repo fleet.FleetRepo,
	geoRepo fleet.GeoRepo,
	gw fleet.FleetGW,
) (fleet.FleetUC, error) {
	return &fleetUC{
		cfg:     cfg,
		repo:    repo,
		geoRepo: geoRepo,
		gw:      gw,
	}, nil
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ListAvailable returns available ambulances, optionally scoped to one provider
func (uc *fleetUC) ListAvailable(ctx context.Context, providerID *uuid.UUID) ([]models.AvailableAmbulance, error) {
	return uc.repo.ListAvailable(ctx, providerID)
}

// FindNearest ranks available ambulances by distance from the caller
func (uc *fleetUC) FindNearest(ctx context.Context, lat, lng float64) ([]models.NearestAmbulance, error) {
	if !validCoordinate(lat, lng) {
		return nil, apperrors.InvalidInput("coordinate out of range: %f, %f", lat, lng)
	}

	start := time.Now()
	ambulances, err := uc.repo.FindNearest(ctx, lat, lng, uc.cfg.Fleet.NearestLimit)
	if err != nil {
		return nil, err
	}
	observability.NearestQueries.Observe(time.Since(start).Seconds())

	return ambulances, nil
}

// NearbyLive serves the live geo index. A non-positive radius falls
// back to the configured default.
func (uc *fleetUC) NearbyLive(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyAmbulance, error) {
	if !validCoordinate(lat, lng) {
		return nil, apperrors.InvalidInput("coordinate out of range: %f, %f", lat, lng)
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Fleet.LiveRadiusKm
	}

	return uc.geoRepo.Nearby(ctx, lat, lng, radiusKm, uc.cfg.Fleet.NearestLimit)
}

// RegisterAmbulance creates a new ambulance record and announces it
func (uc *fleetUC) RegisterAmbulance(ctx context.Context, req models.RegisterAmbulanceRequest) (*models.Ambulance, error) {
	if req.VehicleNumber == "" {
		return nil, apperrors.InvalidInput("vehicle number is required")
	}
	if req.Latitude != nil && req.Longitude != nil && !validCoordinate(*req.Latitude, *req.Longitude) {
		return nil, apperrors.InvalidInput("coordinate out of range: %f, %f", *req.Latitude, *req.Longitude)
	}

	ambulance := &models.Ambulance{
		ProviderID:    req.ProviderID,
		VehicleNumber: req.VehicleNumber,
		ModelName:     req.ModelName,
		AmbulanceType: req.AmbulanceType,
		Status:        models.AmbulanceStatusAvailable,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		DriverID:      req.DriverID,
	}

	if err := uc.repo.CreateAmbulance(ctx, ambulance); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishAmbulanceRegistered(ctx, ambulance); err != nil {
		logger.Warn("Failed to publish ambulance registered event",
			logger.String("ambulance_id", ambulance.ID.String()),
			logger.Err(err))
	}

	if ambulance.Latitude != nil && ambulance.Longitude != nil {
		if err := uc.geoRepo.UpsertAvailable(ctx, ambulance.ID, *ambulance.Latitude, *ambulance.Longitude); err != nil {
			logger.Warn("Failed to seed live geo index",
				logger.String("ambulance_id", ambulance.ID.String()),
				logger.Err(err))
		}
	}

	logger.Info("Registered ambulance",
		logger.String("ambulance_id", ambulance.ID.String()),
		logger.String("vehicle_number", ambulance.VehicleNumber))

	return ambulance, nil
}

// SetAmbulanceActive flips an ambulance between available and
// inactive. A busy ambulance fails the swap and surfaces a conflict.
func (uc *fleetUC) SetAmbulanceActive(ctx context.Context, ambulanceID uuid.UUID, active bool) error {
	expected, next := models.AmbulanceStatusAvailable, models.AmbulanceStatusInactive
	if active {
		expected, next = models.AmbulanceStatusInactive, models.AmbulanceStatusAvailable
	}

	if err := uc.repo.SwapAmbulanceStatus(ctx, ambulanceID, expected, next); err != nil {
		return err
	}

	return uc.SyncAvailability(ctx, ambulanceID)
}

// ToggleDriverOnline flips the driver's online flag and announces the change
func (uc *fleetUC) ToggleDriverOnline(ctx context.Context, req models.DriverStatusRequest) error {
	if req.DriverID == uuid.Nil {
		return apperrors.InvalidInput("driver_id is required")
	}

	if err := uc.repo.SetDriverOnline(ctx, req.DriverID, req.IsOnline); err != nil {
		return err
	}

	if err := uc.gw.PublishDriverStatus(ctx, req.DriverID, req.IsOnline); err != nil {
		logger.Warn("Failed to publish driver status event",
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
	}

	return nil
}

// GetDriverProfile retrieves a driver profile with user and ambulance data
func (uc *fleetUC) GetDriverProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error) {
	return uc.repo.GetDriverProfile(ctx, driverID)
}

// TrackLocation persists a reported coordinate and refreshes the live
// index. Stale or malformed updates are dropped without error so one
// bad report cannot wedge the consumer.
func (uc *fleetUC) TrackLocation(ctx context.Context, update models.LocationUpdate) error {
	if update.AmbulanceID == uuid.Nil {
		return apperrors.InvalidInput("ambulance_id is required")
	}
	if !validCoordinate(update.Location.Latitude, update.Location.Longitude) {
		return apperrors.InvalidInput("coordinate out of range: %f, %f",
			update.Location.Latitude, update.Location.Longitude)
	}

	if err := uc.repo.UpdateAmbulanceLocation(ctx, update.AmbulanceID, update.Location.Latitude, update.Location.Longitude); err != nil {
		return err
	}

	return uc.SyncAvailability(ctx, update.AmbulanceID)
}

// SyncAvailability reconciles one ambulance's live index entry with
// its SQL status: available ambulances with a coordinate are indexed,
// everything else is removed.
func (uc *fleetUC) SyncAvailability(ctx context.Context, ambulanceID uuid.UUID) error {
	ambulance, err := uc.repo.GetAmbulance(ctx, ambulanceID)
	if err != nil {
		return err
	}

	if ambulance.Status == models.AmbulanceStatusAvailable &&
		ambulance.Latitude != nil && ambulance.Longitude != nil {
		return uc.geoRepo.UpsertAvailable(ctx, ambulanceID, *ambulance.Latitude, *ambulance.Longitude)
	}

	return uc.geoRepo.Remove(ctx, ambulanceID)
}
