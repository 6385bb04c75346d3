package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/booking BookingUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/booking BookingRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/booking BookingGW

// Typed outcomes for transactional booking operations. Losing a race or
// hitting a precondition is an expected result, not an error.

type AcceptOutcome string

const (
	AcceptAccepted     AcceptOutcome = "accepted"
	AcceptAlreadyTaken AcceptOutcome = "already_taken"
	AcceptExpired      AcceptOutcome = "expired"
	AcceptNotFound     AcceptOutcome = "not_found"
)

type CompleteOutcome string

const (
	CompleteCompleted   CompleteOutcome = "completed"
	CompleteNotAccepted CompleteOutcome = "not_accepted"
	CompleteWrongDriver CompleteOutcome = "wrong_driver"
	CompleteNotFound    CompleteOutcome = "not_found"
)

type RateOutcome string

const (
	RateRated         RateOutcome = "rated"
	RateAlreadyRated  RateOutcome = "already_rated"
	RateNotCompleted  RateOutcome = "not_completed"
	RateInvalidRating RateOutcome = "invalid_rating"
	RateNotFound      RateOutcome = "not_found"
)

type CancelOutcome string

const (
	CancelCancelled       CancelOutcome = "cancelled"
	CancelAlreadyTerminal CancelOutcome = "already_terminal"
	CancelNotFound        CancelOutcome = "not_found"
)

type ReopenOutcome string

const (
	ReopenReopened    ReopenOutcome = "reopened"
	ReopenNotAccepted ReopenOutcome = "not_accepted"
	ReopenWrongDriver ReopenOutcome = "wrong_driver"
	ReopenNotFound    ReopenOutcome = "not_found"
)

type AdvanceOutcome string

const (
	AdvanceAdvanced          AdvanceOutcome = "advanced"
	AdvanceInvalidTransition AdvanceOutcome = "invalid_transition"
	AdvanceNotAccepted       AdvanceOutcome = "not_accepted"
	AdvanceWrongDriver       AdvanceOutcome = "wrong_driver"
	AdvanceNotFound          AdvanceOutcome = "not_found"
)

// BookingUC defines the booking business logic contract.
type BookingUC interface {
	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingRequest, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error)
	ListOpenBookings(ctx context.Context) ([]*models.BookingRequest, error)
	ListCustomerBookings(ctx context.Context, customerPhone string) ([]*models.BookingRequest, error)
	GetActiveBookingByDriver(ctx context.Context, driverID uuid.UUID) (*models.BookingRequest, error)
	AcceptBooking(ctx context.Context, id, driverID uuid.UUID) (AcceptOutcome, error)
	CompleteRide(ctx context.Context, id, driverID uuid.UUID, fare int) (CompleteOutcome, error)
	RateRide(ctx context.Context, id uuid.UUID, rating int, review string) (RateOutcome, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) (CancelOutcome, error)
	ReopenBooking(ctx context.Context, id, driverID uuid.UUID) (ReopenOutcome, error)
	AdvanceRideStatus(ctx context.Context, id, driverID uuid.UUID, target models.RideStatus) (AdvanceOutcome, error)
	DriverEarnings(ctx context.Context, driverID uuid.UUID, from, to time.Time) (*models.DriverEarnings, error)
}

// BookingRepo defines booking persistence. The transactional operations run
// their full decision inside a row-locking transaction and report the
// outcome plus the booking snapshot after the transaction.
type BookingRepo interface {
	CreateBooking(ctx context.Context, b *models.BookingRequest) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error)
	ListOpenBookings(ctx context.Context) ([]*models.BookingRequest, error)
	ListCustomerBookings(ctx context.Context, customerPhone string) ([]*models.BookingRequest, error)
	ExpireStaleBookings(ctx context.Context) (int, error)
	GetActiveBookingByDriver(ctx context.Context, driverID uuid.UUID) (*models.BookingRequest, error)
	AcceptBooking(ctx context.Context, id, driverID uuid.UUID) (AcceptOutcome, *models.BookingRequest, error)
	CompleteRide(ctx context.Context, id, driverID uuid.UUID, fare int) (CompleteOutcome, *models.BookingRequest, error)
	RateRide(ctx context.Context, id uuid.UUID, rating int, review string) (RateOutcome, *models.BookingRequest, error)
	CancelBooking(ctx context.Context, id uuid.UUID, reason string) (CancelOutcome, *models.BookingRequest, error)
	ReopenBooking(ctx context.Context, id, driverID uuid.UUID, newExpiry time.Time) (ReopenOutcome, *models.BookingRequest, error)
	AdvanceRideStatus(ctx context.Context, id, driverID uuid.UUID, target models.RideStatus) (AdvanceOutcome, *models.BookingRequest, error)
	DriverEarnings(ctx context.Context, driverID uuid.UUID, from, to time.Time) (*models.DriverEarnings, error)
}

// BookingGW publishes booking lifecycle events. Failures are logged by the
// caller and never fail the transition.
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error
	PublishBookingAccepted(ctx context.Context, event models.BookingAcceptedEvent) error
	PublishBookingCancelled(ctx context.Context, event models.BookingCancelledEvent) error
	PublishBookingReopened(ctx context.Context, event models.BookingReopenedEvent) error
	PublishRideStatus(ctx context.Context, event models.RideStatusEvent) error
	PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent) error
}
