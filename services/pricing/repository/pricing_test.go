package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/pricing/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var routeCols = []string{
	"driver_id", "route_key", "from_location", "to_location",
	"price", "distance_km", "duration_min", "created_at", "updated_at",
}

var modifierCols = []string{
	"driver_id", "night_enabled", "night_start", "night_end", "night_multiplier",
	"holiday_enabled", "holiday_multiplier", "peak_slots", "special_zones", "updated_at",
}

func TestUpsertRoutePrice(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	now := time.Now()
	route := &models.RoutePrice{
		DriverID:     uuid.New(),
		RouteKey:     "machakos town-masii",
		FromLocation: "machakos town",
		ToLocation:   "masii",
		Price:        1500,
		DistanceKm:   27.5,
		DurationMin:  45,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO route_prices")).
		WithArgs(route.DriverID, route.RouteKey, route.FromLocation, route.ToLocation,
			route.Price, route.DistanceKm, route.DurationMin, route.CreatedAt, route.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertRoutePrice(context.Background(), route)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoutePrice(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	driverID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM route_prices WHERE driver_id = $1 AND route_key = $2")).
		WithArgs(driverID, "machakos town-masii").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRoutePrice(context.Background(), driverID, "machakos town-masii")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoutePrices(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	driverID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(routeCols).
		AddRow(driverID, "machakos town-masii", "machakos town", "masii", 1500, 27.5, 45, now, now).
		AddRow(driverID, "machakos town-tala", "machakos town", "tala", 2000, 35.0, 60, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM route_prices")).
		WithArgs(driverID).
		WillReturnRows(rows)

	routes, err := repo.ListRoutePrices(context.Background(), driverID)

	assert.NoError(t, err)
	assert.Len(t, routes, 2)
	assert.Equal(t, "machakos town-masii", routes[0].RouteKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertModifiers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	m := &models.PricingModifiers{
		DriverID: uuid.New(),
		Night:    models.NightWindow{Enabled: true, StartHour: 22, EndHour: 5, Multiplier: 1.5},
		Holiday:  models.HolidayModifier{Enabled: false, Multiplier: 0},
		PeakSlots: []models.PeakHourSlot{
			{Enabled: true, StartHour: 7, EndHour: 9, Multiplier: 1.2},
		},
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pricing_modifiers")).
		WithArgs(m.DriverID, true, 22, 5, 1.5, false, 0.0, sqlmock.AnyArg(), sqlmock.AnyArg(), m.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertModifiers(context.Background(), m)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_NoModifierRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	driverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM route_prices")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(routeCols).
			AddRow(driverID, "machakos town-masii", "machakos town", "masii", 1500, 27.5, 45, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pricing_modifiers")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(modifierCols))

	profile, err := repo.GetProfile(context.Background(), driverID)

	assert.NoError(t, err)
	assert.Len(t, profile.Routes, 1)
	// Absent modifier row means nothing enabled.
	assert.False(t, profile.Modifiers.Night.Enabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_WithModifiers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	driverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM route_prices")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(routeCols))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pricing_modifiers")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(modifierCols).
			AddRow(driverID, true, 22, 5, 1.5, true, 2.0,
				[]byte(`[{"enabled":true,"start_hour":7,"end_hour":9,"multiplier":1.2}]`),
				[]byte(`[{"zone":"cbd","flat":50,"percent":10}]`), now))

	profile, err := repo.GetProfile(context.Background(), driverID)

	assert.NoError(t, err)
	assert.True(t, profile.Modifiers.Night.Enabled)
	assert.Equal(t, 1.5, profile.Modifiers.Night.Multiplier)
	assert.Len(t, profile.Modifiers.PeakSlots, 1)
	assert.Len(t, profile.Modifiers.SpecialZones, 1)
	assert.Equal(t, "cbd", profile.Modifiers.SpecialZones[0].Zone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfiles_Batch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	d1 := uuid.New()
	d2 := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM route_prices")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(routeCols).
			AddRow(d1, "machakos town-masii", "machakos town", "masii", 1500, 27.5, 45, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pricing_modifiers")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(modifierCols).
			AddRow(d1, true, 22, 5, 1.5, false, 0.0, []byte(`[]`), []byte(`[]`), now))

	profiles, err := repo.GetProfiles(context.Background(), []uuid.UUID{d1, d2})

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Len(t, profiles[d1].Routes, 1)
	assert.True(t, profiles[d1].Modifiers.Night.Enabled)
	// Driver with no rows still gets an empty profile.
	assert.Empty(t, profiles[d2].Routes)
	assert.False(t, profiles[d2].Modifiers.Night.Enabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfiles_Empty(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db)

	profiles, err := repo.GetProfiles(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, profiles)
}
