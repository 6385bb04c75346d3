package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/converter"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

// bookingDTO maps the bookings row with its nullable columns.
type bookingDTO struct {
	ID             uuid.UUID       `db:"id"`
	CustomerID     sql.NullString  `db:"customer_id"`
	CustomerName   string          `db:"customer_name"`
	CustomerPhone  string          `db:"customer_phone"`
	PickupLocation string          `db:"pickup_location"`
	Destination    string          `db:"destination"`
	DestLatitude   sql.NullFloat64 `db:"dest_latitude"`
	DestLongitude  sql.NullFloat64 `db:"dest_longitude"`
	PickupDate     string          `db:"pickup_date"`
	PickupTime     string          `db:"pickup_time"`
	Status         string          `db:"status"`
	RideStatus     sql.NullString  `db:"ride_status"`
	AcceptedBy     sql.NullString  `db:"accepted_by"`
	Fare           int             `db:"fare"`
	Rating         sql.NullInt64   `db:"rating"`
	Review         sql.NullString  `db:"review"`
	CancelReason   sql.NullString  `db:"cancel_reason"`
	CreatedAt      time.Time       `db:"created_at"`
	ExpiresAt      time.Time       `db:"expires_at"`
	AcceptedAt     sql.NullTime    `db:"accepted_at"`
	ConfirmedAt    sql.NullTime    `db:"confirmed_at"`
	EnRouteAt      sql.NullTime    `db:"en_route_at"`
	ArrivedAt      sql.NullTime    `db:"arrived_at"`
	InProgressAt   sql.NullTime    `db:"in_progress_at"`
	CompletedAt    sql.NullTime    `db:"completed_at"`
	CancelledAt    sql.NullTime    `db:"cancelled_at"`
	RatedAt        sql.NullTime    `db:"rated_at"`
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (d *bookingDTO) toBooking() *models.BookingRequest {
	b := &models.BookingRequest{
		ID:             d.ID,
		CustomerID:     d.CustomerID.String,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		PickupLocation: d.PickupLocation,
		Destination:    d.Destination,
		DestLatitude:   d.DestLatitude.Float64,
		DestLongitude:  d.DestLongitude.Float64,
		PickupDate:     d.PickupDate,
		PickupTime:     d.PickupTime,
		Status:         models.BookingStatus(d.Status),
		RideStatus:     models.RideStatus(d.RideStatus.String),
		Fare:           d.Fare,
		Rating:         int(d.Rating.Int64),
		Review:         d.Review.String,
		CancelReason:   d.CancelReason.String,
		CreatedAt:      d.CreatedAt,
		ExpiresAt:      d.ExpiresAt,
		AcceptedAt:     nullTimePtr(d.AcceptedAt),
		ConfirmedAt:    nullTimePtr(d.ConfirmedAt),
		EnRouteAt:      nullTimePtr(d.EnRouteAt),
		ArrivedAt:      nullTimePtr(d.ArrivedAt),
		InProgressAt:   nullTimePtr(d.InProgressAt),
		CompletedAt:    nullTimePtr(d.CompletedAt),
		CancelledAt:    nullTimePtr(d.CancelledAt),
		RatedAt:        nullTimePtr(d.RatedAt),
	}
	if d.AcceptedBy.Valid {
		id := converter.StrToUUID(d.AcceptedBy.String)
		b.AcceptedBy = &id
	}
	return b
}
