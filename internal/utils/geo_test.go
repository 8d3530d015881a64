package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

func pointLocation(lat, lng float64) models.Location {
	return models.Location{Latitude: lat, Longitude: lng}
}

func TestHaversineSelfDistanceIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(23.8103, 90.4125, 23.8103, 90.4125))
	assert.Equal(t, 0.0, Haversine(0, 0, 0, 0))
}

func TestHaversineKnownDistance(t *testing.T) {
	// Dhaka to Chattogram, roughly 215 km
	d := Haversine(23.8103, 90.4125, 22.3569, 91.7832)
	assert.InDelta(t, 215.0, d, 10.0)
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := Haversine(23.8103, 90.4125, 22.3569, 91.7832)
	d2 := Haversine(22.3569, 91.7832, 23.8103, 90.4125)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestEncodeDecodeGeohash(t *testing.T) {
	lat, lng := 23.8103, 90.4125

	hash := EncodeLocation(pointLocation(lat, lng), 9)
	assert.NotEmpty(t, hash)

	gotLat, gotLng := DecodeGeohash(hash)
	assert.InDelta(t, lat, gotLat, 0.001)
	assert.InDelta(t, lng, gotLng, 0.001)
}

func TestCalculateDistanceMatchesHaversine(t *testing.T) {
	p1 := GeoPoint{Latitude: 23.8103, Longitude: 90.4125}
	p2 := GeoPoint{Latitude: 23.7510, Longitude: 90.3935}
	assert.Equal(t, Haversine(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude), CalculateDistance(p1, p2))
}
