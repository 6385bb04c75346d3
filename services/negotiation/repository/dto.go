package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

// negotiationDTO maps the negotiations row. last_sender backs the turn check
// so it can run under the row lock without loading the message log.
type negotiationDTO struct {
	ID            uuid.UUID      `db:"id"`
	BookingID     uuid.UUID      `db:"booking_id"`
	DriverID      uuid.UUID      `db:"driver_id"`
	CustomerID    sql.NullString `db:"customer_id"`
	InitialPrice  int            `db:"initial_price"`
	ProposedPrice int            `db:"proposed_price"`
	CurrentOffer  int            `db:"current_offer"`
	Status        string         `db:"status"`
	LastSender    string         `db:"last_sender"`
	CreatedAt     time.Time      `db:"created_at"`
	ExpiresAt     time.Time      `db:"expires_at"`
	ResolvedAt    sql.NullTime   `db:"resolved_at"`
}

func (d *negotiationDTO) toNegotiation() *models.Negotiation {
	n := &models.Negotiation{
		ID:            d.ID,
		BookingID:     d.BookingID,
		DriverID:      d.DriverID,
		CustomerID:    d.CustomerID.String,
		InitialPrice:  d.InitialPrice,
		ProposedPrice: d.ProposedPrice,
		CurrentOffer:  d.CurrentOffer,
		Status:        models.NegotiationStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		ExpiresAt:     d.ExpiresAt,
	}
	if d.ResolvedAt.Valid {
		v := d.ResolvedAt.Time
		n.ResolvedAt = &v
	}
	return n
}

func (d *negotiationDTO) isTerminal() bool {
	switch models.NegotiationStatus(d.Status) {
	case models.NegotiationStatusAccepted, models.NegotiationStatusDeclined, models.NegotiationStatusExpired:
		return true
	}
	return false
}
