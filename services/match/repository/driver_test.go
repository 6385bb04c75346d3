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
	"github.com/sieless/Taxi-Tao-sub000/services/match"
	"github.com/sieless/Taxi-Tao-sub000/services/match/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var driverCols = []string{
	"id", "name", "phone", "status", "subscription_status", "current_location",
	"average_rating", "total_rides", "total_ratings", "created_at", "updated_at",
}

func TestCreateDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMatchRepository(&models.Config{}, db)

	now := time.Now()
	driver := &models.Driver{
		ID:                 uuid.New(),
		Name:               "Mutua Kioko",
		Phone:              "+254711000111",
		Status:             models.DriverStatusOffline,
		SubscriptionStatus: models.SubscriptionPending,
		CurrentLocation:    "Machakos Town",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO drivers")).
		WithArgs(driver.ID, driver.Name, driver.Phone, driver.Status, driver.SubscriptionStatus,
			driver.CurrentLocation, driver.AverageRating, driver.TotalRides, driver.TotalRatings,
			driver.CreatedAt, driver.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDriver(context.Background(), driver)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriver_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMatchRepository(&models.Config{}, db)

	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM drivers")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(driverCols))

	driver, err := repo.GetDriver(context.Background(), driverID)

	assert.ErrorIs(t, err, match.ErrDriverNotFound)
	assert.Nil(t, driver)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveDrivers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMatchRepository(&models.Config{}, db)

	now := time.Now()
	rows := sqlmock.NewRows(driverCols).
		AddRow(uuid.New(), "Mutua Kioko", "+254711000111", "available", "active",
			"Machakos Town", 4.5, 120, 80, now, now).
		AddRow(uuid.New(), "Mwende Nzioka", "+254722000222", "busy", "active",
			"Masii", 4.0, 60, 40, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM drivers")).
		WithArgs(models.DriverStatusOffline).
		WillReturnRows(rows)

	drivers, err := repo.ListActiveDrivers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, drivers, 2)
	assert.Equal(t, "Mutua Kioko", drivers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDriverStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMatchRepository(&models.Config{}, db)

	driverID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(models.DriverStatusBusy, sqlmock.AnyArg(), driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateDriverStatus(context.Background(), driverID, models.DriverStatusBusy)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDriverStatus_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMatchRepository(&models.Config{}, db)

	driverID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers")).
		WithArgs(models.DriverStatusBusy, sqlmock.AnyArg(), driverID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDriverStatus(context.Background(), driverID, models.DriverStatusBusy)

	assert.ErrorIs(t, err, match.ErrDriverNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
