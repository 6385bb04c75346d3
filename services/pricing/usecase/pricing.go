package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/locations"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/observability"
	"github.com/sieless/Taxi-Tao-sub000/services/pricing"
)

// SetRoutePrice creates or replaces a driver's price for a route.
func (uc *PricingUC) SetRoutePrice(ctx context.Context, driverID uuid.UUID, from, to string, price int, distanceKm float64, durationMin int) (*models.RoutePrice, error) {
	key, err := RouteKey(from, to)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, pricing.ErrInvalidPrice
	}

	route := &models.RoutePrice{
		DriverID:     driverID,
		RouteKey:     key,
		FromLocation: locations.Normalize(from),
		ToLocation:   locations.Normalize(to),
		Price:        price,
		DistanceKm:   distanceKm,
		DurationMin:  durationMin,
		CreatedAt:    uc.now(),
		UpdatedAt:    uc.now(),
	}

	if err := uc.pricingRepo.UpsertRoutePrice(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to save route price: %w", err)
	}

	logger.InfoCtx(ctx, "Route price set",
		logger.String("driver_id", driverID.String()),
		logger.String("route_key", key),
		logger.Int("price", price))
	return route, nil
}

// DeleteRoutePrice removes a driver's price for a route.
func (uc *PricingUC) DeleteRoutePrice(ctx context.Context, driverID uuid.UUID, from, to string) error {
	key, err := RouteKey(from, to)
	if err != nil {
		return err
	}
	return uc.pricingRepo.DeleteRoutePrice(ctx, driverID, key)
}

// ListRoutePrices returns all routes a driver has priced.
func (uc *PricingUC) ListRoutePrices(ctx context.Context, driverID uuid.UUID) ([]models.RoutePrice, error) {
	return uc.pricingRepo.ListRoutePrices(ctx, driverID)
}

// SetModifiers replaces a driver's time/zone fare adjustments.
func (uc *PricingUC) SetModifiers(ctx context.Context, modifiers *models.PricingModifiers) error {
	if err := validateModifiers(modifiers); err != nil {
		return err
	}
	modifiers.UpdatedAt = uc.now()
	if err := uc.pricingRepo.UpsertModifiers(ctx, modifiers); err != nil {
		return fmt.Errorf("failed to save pricing modifiers: %w", err)
	}
	logger.InfoCtx(ctx, "Pricing modifiers updated",
		logger.String("driver_id", modifiers.DriverID.String()))
	return nil
}

func validateModifiers(m *models.PricingModifiers) error {
	checkHour := func(h int) error {
		if h < 0 || h > 23 {
			return fmt.Errorf("hour %d out of range", h)
		}
		return nil
	}
	if err := checkHour(m.Night.StartHour); err != nil {
		return err
	}
	if err := checkHour(m.Night.EndHour); err != nil {
		return err
	}
	for _, slot := range m.PeakSlots {
		if err := checkHour(slot.StartHour); err != nil {
			return err
		}
		if err := checkHour(slot.EndHour); err != nil {
			return err
		}
	}
	return nil
}

// GetProfile returns a driver's routes plus modifiers.
func (uc *PricingUC) GetProfile(ctx context.Context, driverID uuid.UUID) (*models.PricingProfile, error) {
	return uc.pricingRepo.GetProfile(ctx, driverID)
}

// QuoteFare computes the current adjusted fare for a driver on a route.
// Returns 0 when the driver has no price for the route.
func (uc *PricingUC) QuoteFare(ctx context.Context, driverID uuid.UUID, from, to string) (int, error) {
	profile, err := uc.pricingRepo.GetProfile(ctx, driverID)
	if err != nil {
		return 0, fmt.Errorf("failed to load pricing profile: %w", err)
	}

	fare := ComputeFare(profile, from, to, uc.now())
	observability.FaresComputed.Inc()
	return fare, nil
}
