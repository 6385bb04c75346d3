package negotiation

import (
	"context"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/negotiation NegotiationRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sieless/Taxi-Tao-sub000/services/negotiation NegotiationGW

// NegotiationOutcome is the typed result of a negotiation action. Expected
// precondition failures are outcomes, not errors.
type NegotiationOutcome string

const (
	NegotiationOK              NegotiationOutcome = "ok"
	NegotiationNotFound        NegotiationOutcome = "not_found"
	NegotiationAlreadyResolved NegotiationOutcome = "already_resolved"
	NegotiationNotYourTurn     NegotiationOutcome = "not_your_turn"
	NegotiationExpired         NegotiationOutcome = "expired"
	NegotiationInvalidPrice    NegotiationOutcome = "invalid_price"
)

// NegotiationUC defines the fare negotiation use case operations
type NegotiationUC interface {
	OpenNegotiation(ctx context.Context, bookingID, driverID uuid.UUID, customerID string, initialPrice, proposedPrice int, message string) (*models.Negotiation, error)
	GetNegotiation(ctx context.Context, id uuid.UUID) (*models.Negotiation, error)
	ListPendingByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Negotiation, error)
	CounterOffer(ctx context.Context, id uuid.UUID, actor models.Party, price int, message string) (NegotiationOutcome, error)
	AcceptOffer(ctx context.Context, id uuid.UUID, actor models.Party) (NegotiationOutcome, error)
	DeclineOffer(ctx context.Context, id uuid.UUID, actor models.Party, reason string) (NegotiationOutcome, error)
	CheckExpiration(ctx context.Context, id uuid.UUID) (NegotiationOutcome, error)
}

// NegotiationRepo defines the negotiation persistence operations
type NegotiationRepo interface {
	CreateNegotiation(ctx context.Context, n *models.Negotiation, opening models.NegotiationMessage) error
	GetNegotiation(ctx context.Context, id uuid.UUID) (*models.Negotiation, error)
	ListPendingByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Negotiation, error)
	// AppendCounter records a counter offer and flips the current offer inside
	// one transaction.
	AppendCounter(ctx context.Context, id uuid.UUID, msg models.NegotiationMessage) (NegotiationOutcome, *models.Negotiation, error)
	// Resolve moves a live negotiation to a terminal status and appends the
	// closing message.
	Resolve(ctx context.Context, id uuid.UUID, status models.NegotiationStatus, msg models.NegotiationMessage) (NegotiationOutcome, *models.Negotiation, error)
	// ExpireNegotiation flips a pending negotiation whose deadline passed.
	ExpireNegotiation(ctx context.Context, id uuid.UUID) (NegotiationOutcome, *models.Negotiation, error)
}

// NegotiationGW defines the negotiation notification operations
type NegotiationGW interface {
	PublishNegotiationOffer(ctx context.Context, event models.NegotiationEvent) error
	PublishNegotiationAccepted(ctx context.Context, event models.NegotiationEvent) error
	PublishNegotiationDeclined(ctx context.Context, event models.NegotiationEvent) error
}
