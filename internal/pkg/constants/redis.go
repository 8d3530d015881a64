package constants

// Redis key formats
const (
	// Fleet registry
	KeyAvailableGeo     = "fleet:geo:available"    // GEO set of available ambulances
	KeyAmbulanceLastLoc = "fleet:ambulance:loc:%s" // Format: fleet:ambulance:loc:{ambulance_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
