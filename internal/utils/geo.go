package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// Haversine calculates the great-circle distance between two points in
// kilometers. Identical points return exactly 0.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	rlat1 := lat1 * math.Pi / 180.0
	rlng1 := lng1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlng2 := lng2 * math.Pi / 180.0

	dLat := rlat2 - rlat1
	dLng := rlng2 - rlng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// CalculateDistance calculates the distance between two points in kilometers
func CalculateDistance(point1, point2 GeoPoint) float64 {
	return Haversine(point1.Latitude, point1.Longitude, point2.Latitude, point2.Longitude)
}
