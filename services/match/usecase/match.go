package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/locations"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/observability"
	pricingUC "github.com/sieless/Taxi-Tao-sub000/services/pricing/usecase"
)

// FindDrivers enumerates non-offline drivers, resolves a price for the
// requested route for each (exact first, then via a transport hub), and
// ranks the candidates.
func (uc *MatchUC) FindDrivers(ctx context.Context, from, to string, publicOnly bool) (*models.MatchResult, error) {
	observability.MatchQueries.Inc()

	drivers, err := uc.matchRepo.ListActiveDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active drivers: %w", err)
	}
	if publicOnly {
		visible := drivers[:0]
		for _, d := range drivers {
			if d.IsVisibleToPublic() {
				visible = append(visible, d)
			}
		}
		drivers = visible
	}

	result := &models.MatchResult{
		From:    locations.Normalize(from),
		To:      locations.Normalize(to),
		Matches: []models.DriverMatch{},
	}
	if len(drivers) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(drivers))
	for i, d := range drivers {
		ids[i] = d.ID
	}
	profiles, err := uc.pricingRepo.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing profiles: %w", err)
	}

	for _, driver := range drivers {
		profile, ok := profiles[driver.ID]
		if !ok {
			continue
		}
		m, ok := resolveMatch(driver, profile, from, to)
		if !ok {
			continue
		}
		result.Matches = append(result.Matches, m)
	}

	scoreMatches(result.Matches)
	sortByScore(result.Matches)
	pickRecommendations(result)

	logger.InfoCtx(ctx, "Driver match query served",
		logger.String("from", result.From),
		logger.String("to", result.To),
		logger.Int("candidates", len(result.Matches)))
	return result, nil
}

// resolveMatch finds a usable price for the driver on the route: the exact
// (or reversed) route first, then a hub leg when either endpoint is a minor
// location served by a hub.
func resolveMatch(driver models.Driver, profile *models.PricingProfile, from, to string) (models.DriverMatch, bool) {
	if rp, ok := pricingUC.LookupRoutePrice(profile, from, to); ok {
		return models.DriverMatch{
			Driver:    driver,
			Price:     rp.Price,
			RouteKey:  rp.RouteKey,
			MatchType: models.MatchTypeExact,
		}, true
	}

	if hub, ok := locations.NearbyHub(to); ok {
		if rp, found := pricingUC.LookupRoutePrice(profile, from, hub); found {
			return models.DriverMatch{
				Driver:      driver,
				Price:       rp.Price,
				RouteKey:    rp.RouteKey,
				MatchType:   models.MatchTypeNearby,
				ViaLocation: hub,
			}, true
		}
	}
	if hub, ok := locations.NearbyHub(from); ok {
		if rp, found := pricingUC.LookupRoutePrice(profile, hub, to); found {
			return models.DriverMatch{
				Driver:      driver,
				Price:       rp.Price,
				RouteKey:    rp.RouteKey,
				MatchType:   models.MatchTypeNearby,
				ViaLocation: hub,
			}, true
		}
	}

	return models.DriverMatch{}, false
}

// RegisterDriver stores a new driver profile.
func (uc *MatchUC) RegisterDriver(ctx context.Context, driver *models.Driver) error {
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	if driver.Status == "" {
		driver.Status = models.DriverStatusOffline
	}
	if driver.SubscriptionStatus == "" {
		driver.SubscriptionStatus = models.SubscriptionPending
	}
	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	if err := uc.matchRepo.CreateDriver(ctx, driver); err != nil {
		return fmt.Errorf("failed to register driver: %w", err)
	}
	logger.InfoCtx(ctx, "Driver registered",
		logger.String("driver_id", driver.ID.String()),
		logger.String("name", driver.Name))
	return nil
}

// GetDriver loads one driver profile.
func (uc *MatchUC) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	return uc.matchRepo.GetDriver(ctx, driverID)
}

// UpdateDriverStatus flips a driver between available, busy and offline.
func (uc *MatchUC) UpdateDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error {
	switch status {
	case models.DriverStatusAvailable, models.DriverStatusBusy, models.DriverStatusOffline:
	default:
		return fmt.Errorf("invalid driver status %q", status)
	}
	return uc.matchRepo.UpdateDriverStatus(ctx, driverID, status)
}
