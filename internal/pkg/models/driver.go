package models

import (
	"time"

	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// Driver is a registered driver profile with its aggregate rating counters.
type Driver struct {
	ID                 uuid.UUID          `json:"id" db:"id"`
	Name               string             `json:"name" db:"name"`
	Phone              string             `json:"phone" db:"phone"`
	Status             DriverStatus       `json:"status" db:"status"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status" db:"subscription_status"`
	CurrentLocation    string             `json:"current_location" db:"current_location"`
	AverageRating      float64            `json:"average_rating" db:"average_rating"`
	TotalRides         int                `json:"total_rides" db:"total_rides"`
	TotalRatings       int                `json:"total_ratings" db:"total_ratings"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the driver can be considered for dispatch.
func (d *Driver) IsActive() bool {
	return d.Status != DriverStatusOffline
}

// IsVisibleToPublic reports whether public listings may show the driver.
func (d *Driver) IsVisibleToPublic() bool {
	return d.SubscriptionStatus == SubscriptionActive
}
