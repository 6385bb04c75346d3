package constants

// Redis key formats
const (
	KeyDriverLocation   = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo        = "driver:geo"         // Geo set of all driver positions
	KeyAvailableDrivers = "drivers:available"  // Set of available driver IDs
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geo"
	FieldTimestamp = "ts"
)
