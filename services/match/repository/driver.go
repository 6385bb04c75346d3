package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/match"
)

// MatchRepo implements driver persistence for matching
type MatchRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB) *MatchRepo {
	return &MatchRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateDriver inserts a new driver row.
func (r *MatchRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, name, phone, status, subscription_status, current_location,
			average_rating, total_rides, total_ratings, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		driver.ID, driver.Name, driver.Phone, driver.Status, driver.SubscriptionStatus,
		driver.CurrentLocation, driver.AverageRating, driver.TotalRides, driver.TotalRatings,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// GetDriver loads one driver by ID.
func (r *MatchRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `
		SELECT id, name, phone, status, subscription_status, current_location,
			average_rating, total_rides, total_ratings, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`
	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, query, driverID)
	if err == sql.ErrNoRows {
		return nil, match.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// ListActiveDrivers returns every driver that is not offline.
func (r *MatchRepo) ListActiveDrivers(ctx context.Context) ([]models.Driver, error) {
	query := `
		SELECT id, name, phone, status, subscription_status, current_location,
			average_rating, total_rides, total_ratings, created_at, updated_at
		FROM drivers
		WHERE status <> $1
		ORDER BY created_at
	`
	var drivers []models.Driver
	if err := r.db.SelectContext(ctx, &drivers, query, models.DriverStatusOffline); err != nil {
		return nil, fmt.Errorf("failed to list active drivers: %w", err)
	}
	return drivers, nil
}

// UpdateDriverStatus flips a driver's availability status.
func (r *MatchRepo) UpdateDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error {
	query := `UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check driver status update: %w", err)
	}
	if rows == 0 {
		return match.ErrDriverNotFound
	}
	return nil
}
