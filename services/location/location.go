package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/location LocationRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/location LocationGW

// DriverPosition is a driver's last known position relative to a query point.
type DriverPosition struct {
	DriverID       string  `json:"driver_id"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
}

// LocationUC defines the driver location use case operations
type LocationUC interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, latitude, longitude float64) (*models.Location, error)
	GetDriverLocation(ctx context.Context, driverID uuid.UUID) (*models.Location, error)
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusMeters float64) ([]DriverPosition, error)
	RemoveDriver(ctx context.Context, driverID uuid.UUID) error
}

// LocationRepo defines the driver location storage operations
type LocationRepo interface {
	StoreDriverLocation(ctx context.Context, driverID string, loc models.Location) error
	GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error)
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusMeters float64) ([]DriverPosition, error)
	RemoveDriver(ctx context.Context, driverID string) error
}

// LocationGW defines the location notification operations
type LocationGW interface {
	PublishDriverLocation(ctx context.Context, event models.DriverLocationEvent) error
}
