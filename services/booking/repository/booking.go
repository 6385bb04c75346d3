package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
)

const bookingColumns = `
	id, customer_id, customer_name, customer_phone, pickup_location, destination,
	dest_latitude, dest_longitude, pickup_date, pickup_time, status, ride_status,
	accepted_by, fare, rating, review, cancel_reason, created_at, expires_at,
	accepted_at, confirmed_at, en_route_at, arrived_at, in_progress_at,
	completed_at, cancelled_at, rated_at`

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	now func() time.Time
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
		now: time.Now,
	}
}

// CreateBooking inserts a new pending booking.
func (r *BookingRepo) CreateBooking(ctx context.Context, b *models.BookingRequest) error {
	query := `
		INSERT INTO bookings (
			id, customer_id, customer_name, customer_phone, pickup_location,
			destination, dest_latitude, dest_longitude, pickup_date, pickup_time,
			status, fare, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.CustomerID, b.CustomerName, b.CustomerPhone, b.PickupLocation,
		b.Destination, b.DestLatitude, b.DestLongitude, b.PickupDate, b.PickupTime,
		b.Status, b.Fare, b.CreatedAt, b.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBooking loads one booking by ID.
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

	var dto bookingDTO
	err := r.db.QueryRowxContext(ctx, query, id).StructScan(&dto)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return dto.toBooking(), nil
}

// ListOpenBookings returns pending bookings that have not expired. Stale
// pending rows are flipped to expired first; readers still filter by
// expires_at in case another writer is mid-flight.
func (r *BookingRepo) ListOpenBookings(ctx context.Context) ([]*models.BookingRequest, error) {
	if n, err := r.ExpireStaleBookings(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to expire stale bookings", logger.Err(err))
	} else if n > 0 {
		logger.InfoCtx(ctx, "Expired stale bookings", logger.Int("count", n))
	}

	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND expires_at > $2
		ORDER BY created_at DESC
	`
	return r.selectBookings(ctx, query, models.BookingStatusPending, r.now())
}

// ListCustomerBookings returns a customer's bookings, newest first.
func (r *BookingRepo) ListCustomerBookings(ctx context.Context, customerPhone string) ([]*models.BookingRequest, error) {
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE customer_phone = $1
		ORDER BY created_at DESC
	`
	return r.selectBookings(ctx, query, customerPhone)
}

func (r *BookingRepo) selectBookings(ctx context.Context, query string, args ...interface{}) ([]*models.BookingRequest, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.BookingRequest
	for rows.Next() {
		var dto bookingDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, dto.toBooking())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}

// ExpireStaleBookings batch-flips pending rows past their expiry.
func (r *BookingRepo) ExpireStaleBookings(ctx context.Context) (int, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE status = $2 AND expires_at <= $3
	`
	result, err := r.db.ExecContext(ctx, query,
		models.BookingStatusExpired, models.BookingStatusPending, r.now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale bookings: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired bookings: %w", err)
	}
	return int(n), nil
}

// GetActiveBookingByDriver returns the driver's accepted, in-progress
// booking, or nil when there is none.
func (r *BookingRepo) GetActiveBookingByDriver(ctx context.Context, driverID uuid.UUID) (*models.BookingRequest, error) {
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE accepted_by = $1 AND status = $2 AND ride_status = $3
		ORDER BY accepted_at DESC
		LIMIT 1
	`
	var dto bookingDTO
	err := r.db.QueryRowxContext(ctx, query, driverID,
		models.BookingStatusAccepted, models.RideStatusInProgress).StructScan(&dto)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active booking: %w", err)
	}
	return dto.toBooking(), nil
}

// lockBooking loads a booking inside tx with a row lock.
func (r *BookingRepo) lockBooking(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*bookingDTO, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	var dto bookingDTO
	err := tx.QueryRowxContext(ctx, query, id).StructScan(&dto)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}
	return &dto, nil
}

// AcceptBooking claims a pending booking for a driver. The row lock
// serializes concurrent claims so exactly one driver wins; the rest observe
// already_taken (or expired when the pending window had lapsed).
func (r *BookingRepo) AcceptBooking(ctx context.Context, id, driverID uuid.UUID) (booking.AcceptOutcome, *models.BookingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockBooking(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return booking.AcceptNotFound, nil, nil
	}

	now := r.now()

	if dto.Status == string(models.BookingStatusExpired) {
		tx.Rollback()
		return booking.AcceptExpired, nil, nil
	}
	if dto.Status != string(models.BookingStatusPending) {
		tx.Rollback()
		return booking.AcceptAlreadyTaken, nil, nil
	}
	if !now.Before(dto.ExpiresAt) {
		// Lapsed while still pending: flip it so later readers agree.
		if _, err = tx.ExecContext(ctx,
			`UPDATE bookings SET status = $1 WHERE id = $2`,
			models.BookingStatusExpired, id); err != nil {
			return "", nil, fmt.Errorf("failed to expire booking: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return "", nil, fmt.Errorf("failed to commit expiry: %w", err)
		}
		return booking.AcceptExpired, nil, nil
	}

	updateQuery := `
		UPDATE bookings
		SET status = $1, accepted_by = $2, accepted_at = $3,
			ride_status = $4, confirmed_at = $3
		WHERE id = $5
	`
	if _, err = tx.ExecContext(ctx, updateQuery,
		models.BookingStatusAccepted, driverID, now,
		models.RideStatusConfirmed, id); err != nil {
		return "", nil, fmt.Errorf("failed to accept booking: %w", err)
	}

	// The winning driver is busy until the ride resolves.
	if _, err = tx.ExecContext(ctx,
		`UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`,
		models.DriverStatusBusy, now, driverID); err != nil {
		return "", nil, fmt.Errorf("failed to mark driver busy: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit accept: %w", err)
	}

	b := dto.toBooking()
	b.Status = models.BookingStatusAccepted
	b.AcceptedBy = &driverID
	b.AcceptedAt = &now
	b.RideStatus = models.RideStatusConfirmed
	b.ConfirmedAt = &now
	return booking.AcceptAccepted, b, nil
}

// CompleteRide finalizes an accepted ride and credits the driver's ride
// counter in the same transaction.
func (r *BookingRepo) CompleteRide(ctx context.Context, id, driverID uuid.UUID, fare int) (booking.CompleteOutcome, *models.BookingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockBooking(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return booking.CompleteNotFound, nil, nil
	}
	if dto.Status != string(models.BookingStatusAccepted) {
		tx.Rollback()
		return booking.CompleteNotAccepted, nil, nil
	}
	if !dto.AcceptedBy.Valid || dto.AcceptedBy.String != driverID.String() {
		tx.Rollback()
		return booking.CompleteWrongDriver, nil, nil
	}

	now := r.now()

	updateQuery := `
		UPDATE bookings
		SET status = $1, ride_status = $2, fare = $3, completed_at = $4
		WHERE id = $5
	`
	if _, err = tx.ExecContext(ctx, updateQuery,
		models.BookingStatusCompleted, models.RideStatusCompleted, fare, now, id); err != nil {
		return "", nil, fmt.Errorf("failed to complete ride: %w", err)
	}

	driverQuery := `
		UPDATE drivers
		SET total_rides = total_rides + 1, status = $1, updated_at = $2
		WHERE id = $3
	`
	if _, err = tx.ExecContext(ctx, driverQuery,
		models.DriverStatusAvailable, now, driverID); err != nil {
		return "", nil, fmt.Errorf("failed to credit driver ride: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit completion: %w", err)
	}

	b := dto.toBooking()
	b.Status = models.BookingStatusCompleted
	b.RideStatus = models.RideStatusCompleted
	b.Fare = fare
	b.CompletedAt = &now
	return booking.CompleteCompleted, b, nil
}

// RateRide records a one-time rating and folds it into the driver's average
// with an incremental mean, all in one transaction.
func (r *BookingRepo) RateRide(ctx context.Context, id uuid.UUID, rating int, review string) (booking.RateOutcome, *models.BookingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockBooking(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return booking.RateNotFound, nil, nil
	}
	if dto.Status != string(models.BookingStatusCompleted) || !dto.AcceptedBy.Valid {
		tx.Rollback()
		return booking.RateNotCompleted, nil, nil
	}
	if dto.RatedAt.Valid || (dto.Rating.Valid && dto.Rating.Int64 > 0) {
		tx.Rollback()
		return booking.RateAlreadyRated, nil, nil
	}

	driverID := dto.AcceptedBy.String

	var avg float64
	var count int
	err = tx.QueryRowxContext(ctx,
		`SELECT average_rating, total_ratings FROM drivers WHERE id = $1 FOR UPDATE`,
		driverID).Scan(&avg, &count)
	if err != nil {
		return "", nil, fmt.Errorf("failed to lock driver rating: %w", err)
	}

	newAvg := incrementalAverage(avg, count, rating)
	now := r.now()

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET rating = $1, review = $2, rated_at = $3 WHERE id = $4`,
		rating, review, now, id); err != nil {
		return "", nil, fmt.Errorf("failed to save rating: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE drivers SET average_rating = $1, total_ratings = total_ratings + 1, updated_at = $2 WHERE id = $3`,
		newAvg, now, driverID); err != nil {
		return "", nil, fmt.Errorf("failed to update driver rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit rating: %w", err)
	}

	b := dto.toBooking()
	b.Rating = rating
	b.Review = review
	b.RatedAt = &now
	return booking.RateRated, b, nil
}

// CancelBooking cancels any non-terminal booking.
func (r *BookingRepo) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (booking.CancelOutcome, *models.BookingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockBooking(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return booking.CancelNotFound, nil, nil
	}

	switch models.BookingStatus(dto.Status) {
	case models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusExpired:
		tx.Rollback()
		return booking.CancelAlreadyTerminal, nil, nil
	}

	now := r.now()

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, cancel_reason = $2, cancelled_at = $3 WHERE id = $4`,
		models.BookingStatusCancelled, reason, now, id); err != nil {
		return "", nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	// Free the assigned driver, if any.
	if dto.AcceptedBy.Valid {
		if _, err = tx.ExecContext(ctx,
			`UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`,
			models.DriverStatusAvailable, now, dto.AcceptedBy.String); err != nil {
			return "", nil, fmt.Errorf("failed to free driver: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	b := dto.toBooking()
	b.Status = models.BookingStatusCancelled
	b.CancelReason = reason
	b.CancelledAt = &now
	return booking.CancelCancelled, b, nil
}

// ReopenBooking puts an accepted booking back in the pending pool. Only the
// assigned driver may back out; ride progress fields are cleared and the
// pending window restarts.
func (r *BookingRepo) ReopenBooking(ctx context.Context, id, driverID uuid.UUID, newExpiry time.Time) (booking.ReopenOutcome, *models.BookingRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockBooking(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return booking.ReopenNotFound, nil, nil
	}
	if dto.Status != string(models.BookingStatusAccepted) {
		tx.Rollback()
		return booking.ReopenNotAccepted, nil, nil
	}
	if !dto.AcceptedBy.Valid || dto.AcceptedBy.String != driverID.String() {
		tx.Rollback()
		return booking.ReopenWrongDriver, nil, nil
	}

	now := r.now()

	updateQuery := `
		UPDATE bookings
		SET status = $1, accepted_by = NULL, accepted_at = NULL,
			ride_status = NULL, confirmed_at = NULL, en_route_at = NULL,
			arrived_at = NULL, in_progress_at = NULL, expires_at = $2
		WHERE id = $3
	`
	if _, err = tx.ExecContext(ctx, updateQuery,
		models.BookingStatusPending, newExpiry, id); err != nil {
		return "", nil, fmt.Errorf("failed to reopen booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE drivers SET status = $1, updated_at = $2 WHERE id = $3`,
		models.DriverStatusAvailable, now, driverID); err != nil {
		return "", nil, fmt.Errorf("failed to free driver: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit reopen: %w", err)
	}

	b := dto.toBooking()
	b.Status = models.BookingStatusPending
	b.AcceptedBy = nil
	b.AcceptedAt = nil
	b.RideStatus = ""
	b.ConfirmedAt = nil
	b.EnRouteAt = nil
	b.ArrivedAt = nil
	b.InProgressAt = nil
	b.ExpiresAt = newExpiry
	return booking.ReopenReopened, b, nil
}

// rideStatusColumn maps each forward target to its timestamp column.
var rideStatusColumn = map[models.RideStatus]string{
	models.RideStatusEnRoute:    "en_route_at",
	models.RideStatusArrived:    "arrived_at",
	models.RideStatusInProgress: "in_progress_at",
}

// AdvanceRideStatus moves the accepted ride one step forward. Completion is
// not reachable here; CompleteRide owns that transition.
func (r *BookingRepo) AdvanceRideStatus(ctx context.Context, id, driverID uuid.UUID, target models.RideStatus) (booking.AdvanceOutcome, *models.BookingRequest, error) {
	column, ok := rideStatusColumn[target]
	if !ok {
		return booking.AdvanceInvalidTransition, nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockBooking(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return booking.AdvanceNotFound, nil, nil
	}
	if dto.Status != string(models.BookingStatusAccepted) {
		tx.Rollback()
		return booking.AdvanceNotAccepted, nil, nil
	}
	if !dto.AcceptedBy.Valid || dto.AcceptedBy.String != driverID.String() {
		tx.Rollback()
		return booking.AdvanceWrongDriver, nil, nil
	}
	if models.NextRideStatus(models.RideStatus(dto.RideStatus.String)) != target {
		tx.Rollback()
		return booking.AdvanceInvalidTransition, nil, nil
	}

	now := r.now()

	query := fmt.Sprintf(
		`UPDATE bookings SET ride_status = $1, %s = $2 WHERE id = $3`, column)
	if _, err = tx.ExecContext(ctx, query, target, now, id); err != nil {
		return "", nil, fmt.Errorf("failed to advance ride status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit ride status: %w", err)
	}

	b := dto.toBooking()
	b.RideStatus = target
	switch target {
	case models.RideStatusEnRoute:
		b.EnRouteAt = &now
	case models.RideStatusArrived:
		b.ArrivedAt = &now
	case models.RideStatusInProgress:
		b.InProgressAt = &now
	}
	return booking.AdvanceAdvanced, b, nil
}

// DriverEarnings sums completed fares for a driver in [from, to].
func (r *BookingRepo) DriverEarnings(ctx context.Context, driverID uuid.UUID, from, to time.Time) (*models.DriverEarnings, error) {
	query := `
		SELECT COALESCE(SUM(fare), 0) AS total_fare, COUNT(*) AS ride_count
		FROM bookings
		WHERE accepted_by = $1 AND status = $2
			AND completed_at >= $3 AND completed_at <= $4
	`
	earnings := &models.DriverEarnings{
		DriverID: driverID,
		From:     from,
		To:       to,
	}
	err := r.db.QueryRowxContext(ctx, query,
		driverID, models.BookingStatusCompleted, from, to).
		Scan(&earnings.TotalFare, &earnings.RideCount)
	if err != nil {
		return nil, fmt.Errorf("failed to sum driver earnings: %w", err)
	}
	return earnings, nil
}

// incrementalAverage folds one new rating into a running mean, rounded to
// one decimal place.
func incrementalAverage(avg float64, count, rating int) float64 {
	newAvg := (avg*float64(count) + float64(rating)) / float64(count+1)
	return math.Round(newAvg*10) / 10
}
