package match

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/match MatchRepo

// ErrDriverNotFound is returned when a driver ID resolves to no row.
var ErrDriverNotFound = errors.New("driver not found")

// MatchUC defines the matching business logic contract.
type MatchUC interface {
	// FindDrivers ranks drivers able to serve the route. With publicOnly set,
	// drivers without an active subscription are filtered out.
	FindDrivers(ctx context.Context, from, to string, publicOnly bool) (*models.MatchResult, error)
	RegisterDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	UpdateDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error
}

// MatchRepo defines driver persistence for matching.
type MatchRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	ListActiveDrivers(ctx context.Context) ([]models.Driver, error)
	UpdateDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error
}
