package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// FleetUC defines the fleet registry business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ambunet/dispatch/services/fleet FleetUC
type FleetUC interface {
	ListAvailable(ctx context.Context, providerID *uuid.UUID) ([]models.AvailableAmbulance, error)
	FindNearest(ctx context.Context, lat, lng float64) ([]models.NearestAmbulance, error)
	NearbyLive(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyAmbulance, error)
	RegisterAmbulance(ctx context.Context, req models.RegisterAmbulanceRequest) (*models.Ambulance, error)
	SetAmbulanceActive(ctx context.Context, ambulanceID uuid.UUID, active bool) error
	ToggleDriverOnline(ctx context.Context, req models.DriverStatusRequest) error
	GetDriverProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error)
	TrackLocation(ctx context.Context, update models.LocationUpdate) error
	SyncAvailability(ctx context.Context, ambulanceID uuid.UUID) error
}
