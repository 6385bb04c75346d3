package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/geo"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
	"github.com/sieless/Taxi-Tao-sub000/services/location"
)

// UpdateDriverLocation records a driver's position fix and, when the driver
// is mid-ride, completes the ride on arrival at the booking destination.
func (uc *LocationUC) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) (*models.Location, error) {
	if uc.cfg.Location.MockMode {
		// Field testing without GPS hardware: pin every driver to the
		// configured coordinates.
		latitude = uc.cfg.Location.MockLatitude
		longitude = uc.cfg.Location.MockLongitude
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("invalid coordinates")
	}

	loc := models.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Geohash:   geo.Encode(latitude, longitude),
		Timestamp: uc.now(),
	}

	if err := uc.locationRepo.StoreDriverLocation(ctx, driverID.String(), loc); err != nil {
		return nil, err
	}

	if err := uc.locationGW.PublishDriverLocation(ctx, models.DriverLocationEvent{
		DriverID:  driverID.String(),
		Latitude:  latitude,
		Longitude: longitude,
		Geohash:   loc.Geohash,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish driver location", logger.Err(err))
	}

	uc.checkArrival(ctx, driverID, latitude, longitude)
	return &loc, nil
}

// checkArrival auto-completes an in-progress ride once the driver reports a
// position within the arrival radius of the booking destination.
func (uc *LocationUC) checkArrival(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) {
	b, err := uc.bookingUC.GetActiveBookingByDriver(ctx, driverID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load active booking for arrival check",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return
	}
	if b == nil || (b.DestLatitude == 0 && b.DestLongitude == 0) {
		return
	}

	// Cheap geohash neighbor check first, exact distance second.
	destHash := geo.Encode(b.DestLatitude, b.DestLongitude)
	if !geo.NearCell(destHash, latitude, longitude) {
		return
	}
	if !geo.WithinRadius(latitude, longitude, b.DestLatitude, b.DestLongitude, uc.arrivalRadius()) {
		return
	}

	outcome, err := uc.bookingUC.CompleteRide(ctx, b.ID, driverID, b.Fare)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to auto-complete ride on arrival",
			logger.String("booking_id", b.ID.String()),
			logger.Err(err))
		return
	}
	if outcome == booking.CompleteCompleted {
		logger.InfoCtx(ctx, "Ride auto-completed on arrival",
			logger.String("booking_id", b.ID.String()),
			logger.String("driver_id", driverID.String()))
	}
}

// GetDriverLocation returns the driver's last known fix, or nil when unknown.
func (uc *LocationUC) GetDriverLocation(ctx context.Context, driverID uuid.UUID) (*models.Location, error) {
	return uc.locationRepo.GetDriverLocation(ctx, driverID.String())
}

// NearbyDrivers lists available drivers within radiusMeters of a point.
func (uc *LocationUC) NearbyDrivers(ctx context.Context, latitude, longitude, radiusMeters float64) ([]location.DriverPosition, error) {
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	return uc.locationRepo.NearbyDrivers(ctx, latitude, longitude, radiusMeters)
}

// RemoveDriver takes a driver off the live map, e.g. when going offline.
func (uc *LocationUC) RemoveDriver(ctx context.Context, driverID uuid.UUID) error {
	return uc.locationRepo.RemoveDriver(ctx, driverID.String())
}
