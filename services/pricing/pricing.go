package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/pricing PricingRepo

// ErrInvalidLocation is returned when a location name cannot form a route key.
var ErrInvalidLocation = errors.New("invalid location name")

// ErrInvalidPrice is returned for non-positive route prices.
var ErrInvalidPrice = errors.New("price must be positive")

// PricingUC defines the pricing business logic contract.
type PricingUC interface {
	SetRoutePrice(ctx context.Context, driverID uuid.UUID, from, to string, price int, distanceKm float64, durationMin int) (*models.RoutePrice, error)
	DeleteRoutePrice(ctx context.Context, driverID uuid.UUID, from, to string) error
	ListRoutePrices(ctx context.Context, driverID uuid.UUID) ([]models.RoutePrice, error)
	SetModifiers(ctx context.Context, modifiers *models.PricingModifiers) error
	GetProfile(ctx context.Context, driverID uuid.UUID) (*models.PricingProfile, error)
	QuoteFare(ctx context.Context, driverID uuid.UUID, from, to string) (int, error)
}

// PricingRepo defines the pricing persistence contract.
type PricingRepo interface {
	UpsertRoutePrice(ctx context.Context, route *models.RoutePrice) error
	DeleteRoutePrice(ctx context.Context, driverID uuid.UUID, routeKey string) error
	ListRoutePrices(ctx context.Context, driverID uuid.UUID) ([]models.RoutePrice, error)
	UpsertModifiers(ctx context.Context, modifiers *models.PricingModifiers) error
	GetProfile(ctx context.Context, driverID uuid.UUID) (*models.PricingProfile, error)
	GetProfiles(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]*models.PricingProfile, error)
}
