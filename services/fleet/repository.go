package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// FleetRepo defines data access for ambulance and driver records. The
// registry is the only component that writes their status columns.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ambunet/dispatch/services/fleet FleetRepo
type FleetRepo interface {
	ListAvailable(ctx context.Context, providerID *uuid.UUID) ([]models.AvailableAmbulance, error)
	FindNearest(ctx context.Context, lat, lng float64, limit int) ([]models.NearestAmbulance, error)
	CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	GetAmbulance(ctx context.Context, ambulanceID uuid.UUID) (*models.Ambulance, error)
	// SwapAmbulanceStatus is a compare-and-swap write: it only applies
	// when the row still holds the expected status.
	SwapAmbulanceStatus(ctx context.Context, ambulanceID uuid.UUID, expected, next models.AmbulanceStatus) error
	UpdateAmbulanceLocation(ctx context.Context, ambulanceID uuid.UUID, lat, lng float64) error
	GetDriverProfile(ctx context.Context, driverID uuid.UUID) (*models.DriverProfile, error)
	SetDriverOnline(ctx context.Context, driverID uuid.UUID, isOnline bool) error
}

// GeoRepo defines the live availability index kept in Redis
//
//go:generate mockgen -destination=mocks/mock_geo.go -package=mocks github.com/ambunet/dispatch/services/fleet GeoRepo
type GeoRepo interface {
	UpsertAvailable(ctx context.Context, ambulanceID uuid.UUID, lat, lng float64) error
	Remove(ctx context.Context, ambulanceID uuid.UUID) error
	Nearby(ctx context.Context, lat, lng, radiusKm float64, count int) ([]models.NearbyAmbulance, error)
}
