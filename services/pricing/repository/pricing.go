package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

// PricingRepo implements the pricing repository interface
type PricingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(cfg *models.Config, db *sqlx.DB) *PricingRepo {
	return &PricingRepo{
		cfg: cfg,
		db:  db,
	}
}

// UpsertRoutePrice inserts or replaces a driver's price for a route.
func (r *PricingRepo) UpsertRoutePrice(ctx context.Context, route *models.RoutePrice) error {
	query := `
		INSERT INTO route_prices (
			driver_id, route_key, from_location, to_location,
			price, distance_km, duration_min, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (driver_id, route_key) DO UPDATE SET
			price = EXCLUDED.price,
			distance_km = EXCLUDED.distance_km,
			duration_min = EXCLUDED.duration_min,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		route.DriverID, route.RouteKey, route.FromLocation, route.ToLocation,
		route.Price, route.DistanceKm, route.DurationMin, route.CreatedAt, route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert route price: %w", err)
	}
	return nil
}

// DeleteRoutePrice removes a driver's route price by key.
func (r *PricingRepo) DeleteRoutePrice(ctx context.Context, driverID uuid.UUID, routeKey string) error {
	query := `DELETE FROM route_prices WHERE driver_id = $1 AND route_key = $2`
	_, err := r.db.ExecContext(ctx, query, driverID, routeKey)
	if err != nil {
		return fmt.Errorf("failed to delete route price: %w", err)
	}
	return nil
}

// ListRoutePrices returns all routes priced by a driver.
func (r *PricingRepo) ListRoutePrices(ctx context.Context, driverID uuid.UUID) ([]models.RoutePrice, error) {
	query := `
		SELECT driver_id, route_key, from_location, to_location,
			price, distance_km, duration_min, created_at, updated_at
		FROM route_prices
		WHERE driver_id = $1
		ORDER BY route_key
	`
	var routes []models.RoutePrice
	if err := r.db.SelectContext(ctx, &routes, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list route prices: %w", err)
	}
	return routes, nil
}

// UpsertModifiers replaces a driver's modifier row. Peak slots and zone
// surcharges are stored as JSONB blobs.
func (r *PricingRepo) UpsertModifiers(ctx context.Context, m *models.PricingModifiers) error {
	peakJSON, err := json.Marshal(m.PeakSlots)
	if err != nil {
		return fmt.Errorf("failed to marshal peak slots: %w", err)
	}
	zonesJSON, err := json.Marshal(m.SpecialZones)
	if err != nil {
		return fmt.Errorf("failed to marshal special zones: %w", err)
	}

	query := `
		INSERT INTO pricing_modifiers (
			driver_id, night_enabled, night_start, night_end, night_multiplier,
			holiday_enabled, holiday_multiplier, peak_slots, special_zones, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (driver_id) DO UPDATE SET
			night_enabled = EXCLUDED.night_enabled,
			night_start = EXCLUDED.night_start,
			night_end = EXCLUDED.night_end,
			night_multiplier = EXCLUDED.night_multiplier,
			holiday_enabled = EXCLUDED.holiday_enabled,
			holiday_multiplier = EXCLUDED.holiday_multiplier,
			peak_slots = EXCLUDED.peak_slots,
			special_zones = EXCLUDED.special_zones,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		m.DriverID, m.Night.Enabled, m.Night.StartHour, m.Night.EndHour, m.Night.Multiplier,
		m.Holiday.Enabled, m.Holiday.Multiplier, peakJSON, zonesJSON, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert pricing modifiers: %w", err)
	}
	return nil
}

// GetModifiers loads a driver's modifiers; a driver with no row gets the
// zero-value modifiers (nothing enabled).
func (r *PricingRepo) getModifiers(ctx context.Context, driverID uuid.UUID) (models.PricingModifiers, error) {
	query := `
		SELECT driver_id, night_enabled, night_start, night_end, night_multiplier,
			holiday_enabled, holiday_multiplier, peak_slots, special_zones, updated_at
		FROM pricing_modifiers
		WHERE driver_id = $1
	`
	var dto modifiersDTO
	err := r.db.QueryRowContext(ctx, query, driverID).Scan(
		&dto.DriverID, &dto.NightEnabled, &dto.NightStart, &dto.NightEnd, &dto.NightMultiplier,
		&dto.HolidayEnabled, &dto.HolidayMultiplier, &dto.PeakSlots, &dto.SpecialZones, &dto.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.PricingModifiers{DriverID: driverID}, nil
	}
	if err != nil {
		return models.PricingModifiers{}, fmt.Errorf("failed to load pricing modifiers: %w", err)
	}
	return dto.toModifiers()
}

// GetProfile loads a driver's routes plus modifiers.
func (r *PricingRepo) GetProfile(ctx context.Context, driverID uuid.UUID) (*models.PricingProfile, error) {
	routes, err := r.ListRoutePrices(ctx, driverID)
	if err != nil {
		return nil, err
	}
	modifiers, err := r.getModifiers(ctx, driverID)
	if err != nil {
		return nil, err
	}

	profile := &models.PricingProfile{
		DriverID:  driverID,
		Routes:    make(map[string]models.RoutePrice, len(routes)),
		Modifiers: modifiers,
	}
	for _, route := range routes {
		profile.Routes[route.RouteKey] = route
	}
	return profile, nil
}

// GetProfiles batch-loads profiles for the given drivers in two queries.
func (r *PricingRepo) GetProfiles(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]*models.PricingProfile, error) {
	profiles := make(map[uuid.UUID]*models.PricingProfile, len(driverIDs))
	if len(driverIDs) == 0 {
		return profiles, nil
	}

	ids := make([]string, len(driverIDs))
	for i, id := range driverIDs {
		ids[i] = id.String()
		profiles[id] = &models.PricingProfile{
			DriverID:  id,
			Routes:    make(map[string]models.RoutePrice),
			Modifiers: models.PricingModifiers{DriverID: id},
		}
	}

	routeQuery := `
		SELECT driver_id, route_key, from_location, to_location,
			price, distance_km, duration_min, created_at, updated_at
		FROM route_prices
		WHERE driver_id = ANY($1)
	`
	var routes []models.RoutePrice
	if err := r.db.SelectContext(ctx, &routes, routeQuery, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to load route prices: %w", err)
	}
	for _, route := range routes {
		if p, ok := profiles[route.DriverID]; ok {
			p.Routes[route.RouteKey] = route
		}
	}

	modQuery := `
		SELECT driver_id, night_enabled, night_start, night_end, night_multiplier,
			holiday_enabled, holiday_multiplier, peak_slots, special_zones, updated_at
		FROM pricing_modifiers
		WHERE driver_id = ANY($1)
	`
	rows, err := r.db.QueryContext(ctx, modQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing modifiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dto modifiersDTO
		if err := rows.Scan(
			&dto.DriverID, &dto.NightEnabled, &dto.NightStart, &dto.NightEnd, &dto.NightMultiplier,
			&dto.HolidayEnabled, &dto.HolidayMultiplier, &dto.PeakSlots, &dto.SpecialZones, &dto.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pricing modifiers: %w", err)
		}
		modifiers, err := dto.toModifiers()
		if err != nil {
			return nil, err
		}
		if p, ok := profiles[dto.DriverID]; ok {
			p.Modifiers = modifiers
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pricing modifiers: %w", err)
	}

	return profiles, nil
}
