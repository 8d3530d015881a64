package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/constants"
	"github.com/ambunet/dispatch/internal/pkg/database"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/internal/utils"
)

// GeoRepository keeps the live availability index in Redis. The SQL
// registry stays authoritative; this index only serves the nearby-live
// lookup and is rebuilt from location updates as they stream in.
type GeoRepository struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewGeoRepository creates a new geo repository
func NewGeoRepository(cfg *models.Config, redisClient *database.RedisClient) *GeoRepository {
	return &GeoRepository{
		cfg:   cfg,
		redis: redisClient,
	}
}

// UpsertAvailable writes the ambulance into the availability geo set
// and refreshes its last-location hash with a TTL so stale entries age
// out on their own.
func (g *GeoRepository) UpsertAvailable(ctx context.Context, ambulanceID uuid.UUID, lat, lng float64) error {
	if err := g.redis.GeoAdd(ctx, constants.KeyAvailableGeo, lng, lat, ambulanceID.String()); err != nil {
		return fmt.Errorf("failed to add ambulance to geo index: %w", err)
	}

	locKey := fmt.Sprintf(constants.KeyAmbulanceLastLoc, ambulanceID)
	hash := utils.EncodeLocation(models.Location{Latitude: lat, Longitude: lng}, 7)
	err := g.redis.HSet(ctx, locKey,
		constants.FieldLatitude, lat,
		constants.FieldLongitude, lng,
		constants.FieldGeohash, hash,
		constants.FieldTimestamp, time.Now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store last location: %w", err)
	}

	ttl := time.Duration(g.cfg.Fleet.GeoTTLSeconds) * time.Second
	if err := g.redis.Expire(ctx, locKey, ttl); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	return nil
}

// Remove drops the ambulance from the availability geo set
func (g *GeoRepository) Remove(ctx context.Context, ambulanceID uuid.UUID) error {
	if err := g.redis.ZRem(ctx, constants.KeyAvailableGeo, ambulanceID.String()); err != nil {
		return fmt.Errorf("failed to remove ambulance from geo index: %w", err)
	}
	return nil
}

// Nearby returns available ambulances within radiusKm of the point,
// nearest first.
func (g *GeoRepository) Nearby(ctx context.Context, lat, lng, radiusKm float64, count int) ([]models.NearbyAmbulance, error) {
	locations, err := g.redis.GeoRadius(ctx, constants.KeyAvailableGeo, lng, lat, radiusKm, count)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	nearby := make([]models.NearbyAmbulance, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, models.NearbyAmbulance{
			AmbulanceID: loc.Name,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
			DistanceKm:  loc.Dist,
		})
	}

	return nearby, nil
}
