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
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
	"github.com/sieless/Taxi-Tao-sub000/services/booking/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var bookingCols = []string{
	"id", "customer_id", "customer_name", "customer_phone", "pickup_location",
	"destination", "dest_latitude", "dest_longitude", "pickup_date", "pickup_time",
	"status", "ride_status", "accepted_by", "fare", "rating", "review",
	"cancel_reason", "created_at", "expires_at", "accepted_at", "confirmed_at",
	"en_route_at", "arrived_at", "in_progress_at", "completed_at", "cancelled_at",
	"rated_at",
}

type bookingRow struct {
	id         uuid.UUID
	status     models.BookingStatus
	rideStatus interface{}
	acceptedBy interface{}
	fare       int
	rating     interface{}
	ratedAt    interface{}
	expiresAt  time.Time
}

func lockedBookingRows(r bookingRow) *sqlmock.Rows {
	return sqlmock.NewRows(bookingCols).AddRow(
		r.id, "cust-1", "Mutua Kioko", "+254711000111", "Masii",
		"Machakos", -1.5177, 37.2634, "2026-09-01", "08:30",
		string(r.status), r.rideStatus, r.acceptedBy, r.fare, r.rating, nil,
		nil, time.Now().Add(-time.Hour), r.expiresAt, nil, nil,
		nil, nil, nil, nil, nil,
		r.ratedAt,
	)
}

func TestAcceptBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1 FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:        bookingID,
			status:    models.BookingStatusPending,
			expiresAt: time.Now().Add(time.Hour),
		}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusAccepted, driverID, sqlmock.AnyArg(),
			models.RideStatusConfirmed, bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers")).
		WithArgs(models.DriverStatusBusy, sqlmock.AnyArg(), driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, b, err := repo.AcceptBooking(context.Background(), bookingID, driverID)
	assert.NoError(t, err)
	assert.Equal(t, booking.AcceptAccepted, outcome)
	assert.NotNil(t, b)
	assert.Equal(t, models.BookingStatusAccepted, b.Status)
	assert.Equal(t, driverID, *b.AcceptedBy)
	assert.Equal(t, models.RideStatusConfirmed, b.RideStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_AlreadyTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	winner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusAccepted,
			rideStatus: string(models.RideStatusConfirmed),
			acceptedBy: winner.String(),
			expiresAt:  time.Now().Add(time.Hour),
		}))
	mock.ExpectRollback()

	outcome, b, err := repo.AcceptBooking(context.Background(), bookingID, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, booking.AcceptAlreadyTaken, outcome)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_LapsedPendingFlipsToExpired(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:        bookingID,
			status:    models.BookingStatusPending,
			expiresAt: time.Now().Add(-time.Minute),
		}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
		WithArgs(models.BookingStatusExpired, bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, _, err := repo.AcceptBooking(context.Background(), bookingID, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, booking.AcceptExpired, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingCols))
	mock.ExpectRollback()

	outcome, _, err := repo.AcceptBooking(context.Background(), bookingID, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, booking.AcceptNotFound, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRide_WrongDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	assigned := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusAccepted,
			rideStatus: string(models.RideStatusInProgress),
			acceptedBy: assigned.String(),
			expiresAt:  time.Now().Add(time.Hour),
		}))
	mock.ExpectRollback()

	outcome, _, err := repo.CompleteRide(context.Background(), bookingID, uuid.New(), 3000)
	assert.NoError(t, err)
	assert.Equal(t, booking.CompleteWrongDriver, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusAccepted,
			rideStatus: string(models.RideStatusInProgress),
			acceptedBy: driverID.String(),
			expiresAt:  time.Now().Add(time.Hour),
		}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusCompleted, models.RideStatusCompleted, 3000,
			sqlmock.AnyArg(), bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("total_rides = total_rides + 1")).
		WithArgs(models.DriverStatusAvailable, sqlmock.AnyArg(), driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, b, err := repo.CompleteRide(context.Background(), bookingID, driverID, 3000)
	assert.NoError(t, err)
	assert.Equal(t, booking.CompleteCompleted, outcome)
	assert.Equal(t, 3000, b.Fare)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusCompleted,
			rideStatus: string(models.RideStatusCompleted),
			acceptedBy: driverID.String(),
			fare:       3000,
			expiresAt:  time.Now().Add(-time.Hour),
		}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT average_rating, total_ratings FROM drivers")).
		WithArgs(driverID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "total_ratings"}).
			AddRow(4.0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET rating")).
		WithArgs(5, "Great ride", sqlmock.AnyArg(), bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// (4.0*3 + 5) / 4 = 4.25, rounded to one decimal.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET average_rating")).
		WithArgs(4.3, sqlmock.AnyArg(), driverID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, b, err := repo.RateRide(context.Background(), bookingID, 5, "Great ride")
	assert.NoError(t, err)
	assert.Equal(t, booking.RateRated, outcome)
	assert.Equal(t, 5, b.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRide_AlreadyRated(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusCompleted,
			rideStatus: string(models.RideStatusCompleted),
			acceptedBy: driverID.String(),
			rating:     4,
			ratedAt:    time.Now().Add(-time.Minute),
			expiresAt:  time.Now().Add(-time.Hour),
		}))
	mock.ExpectRollback()

	outcome, _, err := repo.RateRide(context.Background(), bookingID, 5, "again")
	assert.NoError(t, err)
	assert.Equal(t, booking.RateAlreadyRated, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRide_NotCompleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:        bookingID,
			status:    models.BookingStatusPending,
			expiresAt: time.Now().Add(time.Hour),
		}))
	mock.ExpectRollback()

	outcome, _, err := repo.RateRide(context.Background(), bookingID, 5, "")
	assert.NoError(t, err)
	assert.Equal(t, booking.RateNotCompleted, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_AlreadyTerminal(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:        bookingID,
			status:    models.BookingStatusCompleted,
			expiresAt: time.Now().Add(-time.Hour),
		}))
	mock.ExpectRollback()

	outcome, _, err := repo.CancelBooking(context.Background(), bookingID, "changed plans")
	assert.NoError(t, err)
	assert.Equal(t, booking.CancelAlreadyTerminal, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBooking_FreesAssignedDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusAccepted,
			rideStatus: string(models.RideStatusConfirmed),
			acceptedBy: driverID.String(),
			expiresAt:  time.Now().Add(time.Hour),
		}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WithArgs(models.BookingStatusCancelled, "changed plans", sqlmock.AnyArg(), bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers")).
		WithArgs(models.DriverStatusAvailable, sqlmock.AnyArg(), driverID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, b, err := repo.CancelBooking(context.Background(), bookingID, "changed plans")
	assert.NoError(t, err)
	assert.Equal(t, booking.CancelCancelled, outcome)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceRideStatus_InvalidTransition(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	// Ride is at confirmed; jumping straight to in_progress is rejected.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusAccepted,
			rideStatus: string(models.RideStatusConfirmed),
			acceptedBy: driverID.String(),
			expiresAt:  time.Now().Add(time.Hour),
		}))
	mock.ExpectRollback()

	outcome, _, err := repo.AdvanceRideStatus(context.Background(), bookingID, driverID, models.RideStatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, booking.AdvanceInvalidTransition, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvanceRideStatus_CompletedNotReachable(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	outcome, _, err := repo.AdvanceRideStatus(context.Background(), uuid.New(), uuid.New(), models.RideStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, booking.AdvanceInvalidTransition, outcome)
}

func TestAdvanceRideStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(bookingID).
		WillReturnRows(lockedBookingRows(bookingRow{
			id:         bookingID,
			status:     models.BookingStatusAccepted,
			rideStatus: string(models.RideStatusConfirmed),
			acceptedBy: driverID.String(),
			expiresAt:  time.Now().Add(time.Hour),
		}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET ride_status = $1, en_route_at = $2")).
		WithArgs(models.RideStatusEnRoute, sqlmock.AnyArg(), bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, b, err := repo.AdvanceRideStatus(context.Background(), bookingID, driverID, models.RideStatusEnRoute)
	assert.NoError(t, err)
	assert.Equal(t, booking.AdvanceAdvanced, outcome)
	assert.Equal(t, models.RideStatusEnRoute, b.RideStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireStaleBookings(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusExpired, models.BookingStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ExpireStaleBookings(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	b, err := repo.GetBooking(context.Background(), bookingID)
	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestDriverEarnings(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	driverID := uuid.New()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(fare), 0)")).
		WithArgs(driverID, models.BookingStatusCompleted, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"total_fare", "ride_count"}).
			AddRow(9500, 3))

	earnings, err := repo.DriverEarnings(context.Background(), driverID, from, to)
	assert.NoError(t, err)
	assert.Equal(t, 9500, earnings.TotalFare)
	assert.Equal(t, 3, earnings.RideCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
