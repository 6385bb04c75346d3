package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

const earthRadiusMeters = 6371000.0

// GeohashPrecision gives cells of roughly 1.2km x 0.6km, comfortably larger
// than any arrival radius we check, so the neighbor pre-filter never rejects
// a point that haversine would accept.
const GeohashPrecision = 6

// Haversine returns the great-circle distance between two points in meters.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Encode returns the geohash for a position at the package precision.
func Encode(lat, lon float64) string {
	return geohash.EncodeWithPrecision(lat, lon, GeohashPrecision)
}

// NearCell reports whether hash lies in the same geohash cell as (lat, lon)
// or one of its eight neighbors. Used as a cheap pre-filter before the exact
// haversine check; a point within a few hundred meters is always in the
// neighbor set.
func NearCell(hash string, lat, lon float64) bool {
	if len(hash) != GeohashPrecision {
		return false
	}
	center := geohash.EncodeWithPrecision(lat, lon, GeohashPrecision)
	if hash == center {
		return true
	}
	for _, n := range geohash.Neighbors(center) {
		if hash == n {
			return true
		}
	}
	return false
}

// WithinRadius reports whether the two points are within radiusMeters of
// each other.
func WithinRadius(lat1, lon1, lat2, lon2, radiusMeters float64) bool {
	return Haversine(lat1, lon1, lat2, lon2) <= radiusMeters
}
