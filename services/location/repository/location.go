package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/constants"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/converter"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/database"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/location"
)

// LocationTTL is how long a driver's last position stays in Redis. A driver
// that stops reporting drops off the map after this window.
const LocationTTL = 24 * time.Hour

// LocationRepo stores driver positions in Redis: a per-driver hash for the
// last fix, a geo set for radius queries, and a set of available driver IDs.
type LocationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		redisClient: redisClient,
	}
}

// StoreDriverLocation writes the driver's latest fix and indexes it.
func (r *LocationRepo) StoreDriverLocation(ctx context.Context, driverID string, loc models.Location) error {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  converter.FloatToStr(loc.Latitude),
		constants.FieldLongitude: converter.FloatToStr(loc.Longitude),
		constants.FieldGeohash:   loc.Geohash,
		constants.FieldTimestamp: fmt.Sprintf("%d", loc.Timestamp.Unix()),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, LocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo,
		loc.Longitude, loc.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to index driver position: %w", err)
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to mark driver available: %w", err)
	}
	return nil
}

// GetDriverLocation returns the driver's last fix, or nil when unknown.
func (r *LocationRepo) GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error) {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	values, err := r.redisClient.HGetAll(ctx, locationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	return &models.Location{
		Latitude:  converter.StrToFloat(values[constants.FieldLatitude]),
		Longitude: converter.StrToFloat(values[constants.FieldLongitude]),
		Geohash:   values[constants.FieldGeohash],
		Timestamp: converter.StrToUnixTime(values[constants.FieldTimestamp]),
	}, nil
}

// NearbyDrivers returns available drivers within radiusMeters, nearest first.
func (r *LocationRepo) NearbyDrivers(ctx context.Context, latitude, longitude, radiusMeters float64) ([]location.DriverPosition, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo,
		longitude, latitude, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	var positions []location.DriverPosition
	for _, res := range results {
		available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, res.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver availability: %w", err)
		}
		if !available {
			continue
		}
		positions = append(positions, location.DriverPosition{
			DriverID:       res.Name,
			Latitude:       res.Latitude,
			Longitude:      res.Longitude,
			DistanceMeters: res.Dist,
		})
	}
	return positions, nil
}

// RemoveDriver drops the driver from the availability set and geo index.
func (r *LocationRepo) RemoveDriver(ctx context.Context, driverID string) error {
	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from availability: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID)); err != nil {
		return fmt.Errorf("failed to remove driver location: %w", err)
	}
	return nil
}
