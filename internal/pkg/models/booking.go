package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// RideStatus tracks the accepted booking's progress toward completion.
// It only has meaning while the booking status is accepted (and is frozen at
// completed afterwards).
type RideStatus string

const (
	RideStatusConfirmed  RideStatus = "confirmed"
	RideStatusEnRoute    RideStatus = "en_route"
	RideStatusArrived    RideStatus = "arrived"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
)

// BookingRequest is a customer's ride request and, once accepted, the ride
// record itself. Each lifecycle transition stamps its own timestamp column.
type BookingRequest struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	CustomerID     string        `json:"customer_id" db:"customer_id"`
	CustomerName   string        `json:"customer_name" db:"customer_name"`
	CustomerPhone  string        `json:"customer_phone" db:"customer_phone"`
	PickupLocation string        `json:"pickup_location" db:"pickup_location"`
	Destination    string        `json:"destination" db:"destination"`
	DestLatitude   float64       `json:"dest_latitude" db:"dest_latitude"`
	DestLongitude  float64       `json:"dest_longitude" db:"dest_longitude"`
	PickupDate     string        `json:"pickup_date" db:"pickup_date"`
	PickupTime     string        `json:"pickup_time" db:"pickup_time"`
	Status         BookingStatus `json:"status" db:"status"`
	RideStatus     RideStatus    `json:"ride_status,omitempty" db:"ride_status"`
	AcceptedBy     *uuid.UUID    `json:"accepted_by,omitempty" db:"accepted_by"`
	Fare           int           `json:"fare" db:"fare"`
	Rating         int           `json:"rating,omitempty" db:"rating"`
	Review         string        `json:"review,omitempty" db:"review"`
	CancelReason   string        `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	ExpiresAt      time.Time     `json:"expires_at" db:"expires_at"`
	AcceptedAt     *time.Time    `json:"accepted_at,omitempty" db:"accepted_at"`
	ConfirmedAt    *time.Time    `json:"confirmed_at,omitempty" db:"confirmed_at"`
	EnRouteAt      *time.Time    `json:"en_route_at,omitempty" db:"en_route_at"`
	ArrivedAt      *time.Time    `json:"arrived_at,omitempty" db:"arrived_at"`
	InProgressAt   *time.Time    `json:"in_progress_at,omitempty" db:"in_progress_at"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	RatedAt        *time.Time    `json:"rated_at,omitempty" db:"rated_at"`
}

// IsExpired reports whether the pending window has passed. Expiry is judged
// against expires_at, never against the stored status, so a stale pending row
// is already unacceptable before any writer flips it.
func (b *BookingRequest) IsExpired(now time.Time) bool {
	return !now.Before(b.ExpiresAt)
}

// IsTerminal reports whether no further lifecycle transition is possible.
func (b *BookingRequest) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusExpired:
		return true
	}
	return false
}

// DriverEarnings summarizes a driver's completed rides over a period.
type DriverEarnings struct {
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	TotalFare int       `json:"total_fare" db:"total_fare"`
	RideCount int       `json:"ride_count" db:"ride_count"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
}

// NextRideStatus returns the single allowed forward step from the current
// ride status, or "" when the ride is already at its final step.
func NextRideStatus(current RideStatus) RideStatus {
	switch current {
	case RideStatusConfirmed:
		return RideStatusEnRoute
	case RideStatusEnRoute:
		return RideStatusArrived
	case RideStatusArrived:
		return RideStatusInProgress
	case RideStatusInProgress:
		return RideStatusCompleted
	}
	return ""
}
