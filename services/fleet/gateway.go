package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// FleetGW defines the fleet registry's outbound events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ambunet/dispatch/services/fleet FleetGW
type FleetGW interface {
	PublishAmbulanceRegistered(ctx context.Context, ambulance *models.Ambulance) error
	PublishDriverStatus(ctx context.Context, driverID uuid.UUID, isOnline bool) error
}
