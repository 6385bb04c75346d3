package models

import (
	"time"

	"github.com/google/uuid"
)

type NegotiationStatus string

const (
	NegotiationStatusPending        NegotiationStatus = "pending"
	NegotiationStatusCounterOffered NegotiationStatus = "counter_offered"
	NegotiationStatusAccepted       NegotiationStatus = "accepted"
	NegotiationStatusDeclined       NegotiationStatus = "declined"
	NegotiationStatusExpired        NegotiationStatus = "expired"
)

// Party identifies which side of the negotiation performed an action.
type Party string

const (
	PartyCustomer Party = "customer"
	PartyDriver   Party = "driver"
)

// Other returns the counterparty.
func (p Party) Other() Party {
	if p == PartyCustomer {
		return PartyDriver
	}
	return PartyCustomer
}

type MessageType string

const (
	MessageTypeOffer   MessageType = "offer"
	MessageTypeCounter MessageType = "counter"
	MessageTypeAccept  MessageType = "accept"
	MessageTypeDecline MessageType = "decline"
)

// NegotiationMessage is one entry in the append-only negotiation log.
// Price is 0 for accept/decline messages.
type NegotiationMessage struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	NegotiationID uuid.UUID   `json:"negotiation_id" db:"negotiation_id"`
	Sender        Party       `json:"sender" db:"sender"`
	Type          MessageType `json:"type" db:"type"`
	Price         int         `json:"price,omitempty" db:"price"`
	Message       string      `json:"message,omitempty" db:"message"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

// Negotiation is a fare haggle over one booking. CurrentOffer always equals
// the price of the most recent offer or counter message.
type Negotiation struct {
	ID            uuid.UUID            `json:"id" db:"id"`
	BookingID     uuid.UUID            `json:"booking_id" db:"booking_id"`
	DriverID      uuid.UUID            `json:"driver_id" db:"driver_id"`
	CustomerID    string               `json:"customer_id,omitempty" db:"customer_id"`
	InitialPrice  int                  `json:"initial_price" db:"initial_price"`
	ProposedPrice int                  `json:"proposed_price" db:"proposed_price"`
	CurrentOffer  int                  `json:"current_offer" db:"current_offer"`
	Status        NegotiationStatus    `json:"status" db:"status"`
	Messages      []NegotiationMessage `json:"messages,omitempty" db:"-"`
	CreatedAt     time.Time            `json:"created_at" db:"created_at"`
	ExpiresAt     time.Time            `json:"expires_at" db:"expires_at"`
	ResolvedAt    *time.Time           `json:"resolved_at,omitempty" db:"resolved_at"`
}

// IsTerminal reports whether the negotiation is frozen.
func (n *Negotiation) IsTerminal() bool {
	switch n.Status {
	case NegotiationStatusAccepted, NegotiationStatusDeclined, NegotiationStatusExpired:
		return true
	}
	return false
}

// LastSender returns the sender of the most recent message, or "" when the
// log is empty.
func (n *Negotiation) LastSender() Party {
	if len(n.Messages) == 0 {
		return ""
	}
	return n.Messages[len(n.Messages)-1].Sender
}
