package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/observability"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation"
)

// OpenNegotiation starts a haggle: the customer proposes a price against the
// driver's listed fare.
func (uc *NegotiationUC) OpenNegotiation(ctx context.Context, bookingID, driverID uuid.UUID, customerID string, initialPrice, proposedPrice int, message string) (*models.Negotiation, error) {
	if proposedPrice <= 0 {
		return nil, fmt.Errorf("proposed price must be positive")
	}
	if initialPrice < 0 {
		return nil, fmt.Errorf("initial price must not be negative")
	}

	now := uc.now()
	n := &models.Negotiation{
		ID:            uuid.New(),
		BookingID:     bookingID,
		DriverID:      driverID,
		CustomerID:    customerID,
		InitialPrice:  initialPrice,
		ProposedPrice: proposedPrice,
		CurrentOffer:  proposedPrice,
		Status:        models.NegotiationStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(uc.expiryWindow()),
	}
	opening := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: n.ID,
		Sender:        models.PartyCustomer,
		Type:          models.MessageTypeOffer,
		Price:         proposedPrice,
		Message:       message,
		CreatedAt:     now,
	}

	if err := uc.negotiationRepo.CreateNegotiation(ctx, n, opening); err != nil {
		return nil, err
	}
	n.Messages = []models.NegotiationMessage{opening}
	observability.NegotiationsOpened.Inc()

	uc.publish(ctx, "negotiation opened", func() error {
		return uc.negotiationGW.PublishNegotiationOffer(ctx, uc.event(n, models.PartyDriver, models.MessageTypeOffer, proposedPrice, message))
	})

	logger.InfoCtx(ctx, "Negotiation opened",
		logger.String("negotiation_id", n.ID.String()),
		logger.String("booking_id", bookingID.String()),
		logger.Int("proposed_price", proposedPrice))
	return n, nil
}

// GetNegotiation loads one negotiation with its message log.
func (uc *NegotiationUC) GetNegotiation(ctx context.Context, id uuid.UUID) (*models.Negotiation, error) {
	return uc.negotiationRepo.GetNegotiation(ctx, id)
}

// ListPendingByDriver returns a driver's live negotiations.
func (uc *NegotiationUC) ListPendingByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Negotiation, error) {
	return uc.negotiationRepo.ListPendingByDriver(ctx, driverID)
}

// CounterOffer responds to the other side's offer with a new price. The same
// party cannot counter twice in a row.
func (uc *NegotiationUC) CounterOffer(ctx context.Context, id uuid.UUID, actor models.Party, price int, message string) (negotiation.NegotiationOutcome, error) {
	if price <= 0 {
		return negotiation.NegotiationInvalidPrice, nil
	}

	msg := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        actor,
		Type:          models.MessageTypeCounter,
		Price:         price,
		Message:       message,
		CreatedAt:     uc.now(),
	}
	outcome, n, err := uc.negotiationRepo.AppendCounter(ctx, id, msg)
	if err != nil {
		return "", err
	}

	if outcome == negotiation.NegotiationOK {
		uc.publish(ctx, "counter offer", func() error {
			return uc.negotiationGW.PublishNegotiationOffer(ctx, uc.event(n, actor.Other(), models.MessageTypeCounter, price, message))
		})
		logger.InfoCtx(ctx, "Counter offer recorded",
			logger.String("negotiation_id", id.String()),
			logger.String("sender", string(actor)),
			logger.Int("price", price))
	}
	return outcome, nil
}

// AcceptOffer settles the negotiation at the current offer. A party cannot
// accept its own offer.
func (uc *NegotiationUC) AcceptOffer(ctx context.Context, id uuid.UUID, actor models.Party) (negotiation.NegotiationOutcome, error) {
	msg := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        actor,
		Type:          models.MessageTypeAccept,
		CreatedAt:     uc.now(),
	}
	outcome, n, err := uc.negotiationRepo.Resolve(ctx, id, models.NegotiationStatusAccepted, msg)
	if err != nil {
		return "", err
	}

	if outcome == negotiation.NegotiationOK {
		observability.NegotiationsResolved.WithLabelValues(string(models.NegotiationStatusAccepted)).Inc()
		uc.publish(ctx, "negotiation accepted", func() error {
			return uc.negotiationGW.PublishNegotiationAccepted(ctx, uc.event(n, actor.Other(), models.MessageTypeAccept, n.CurrentOffer, ""))
		})
		logger.InfoCtx(ctx, "Negotiation accepted",
			logger.String("negotiation_id", id.String()),
			logger.Int("agreed_price", n.CurrentOffer))
	}
	return outcome, nil
}

// DeclineOffer ends the negotiation without agreement. Either side may
// decline at any point while the negotiation is live.
func (uc *NegotiationUC) DeclineOffer(ctx context.Context, id uuid.UUID, actor models.Party, reason string) (negotiation.NegotiationOutcome, error) {
	msg := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        actor,
		Type:          models.MessageTypeDecline,
		Message:       reason,
		CreatedAt:     uc.now(),
	}
	outcome, n, err := uc.negotiationRepo.Resolve(ctx, id, models.NegotiationStatusDeclined, msg)
	if err != nil {
		return "", err
	}

	if outcome == negotiation.NegotiationOK {
		observability.NegotiationsResolved.WithLabelValues(string(models.NegotiationStatusDeclined)).Inc()
		uc.publish(ctx, "negotiation declined", func() error {
			return uc.negotiationGW.PublishNegotiationDeclined(ctx, uc.event(n, actor.Other(), models.MessageTypeDecline, 0, reason))
		})
		logger.InfoCtx(ctx, "Negotiation declined",
			logger.String("negotiation_id", id.String()),
			logger.String("by", string(actor)))
	}
	return outcome, nil
}

// CheckExpiration flips a live negotiation past its deadline to expired. It
// is safe to call repeatedly.
func (uc *NegotiationUC) CheckExpiration(ctx context.Context, id uuid.UUID) (negotiation.NegotiationOutcome, error) {
	outcome, _, err := uc.negotiationRepo.ExpireNegotiation(ctx, id)
	if err != nil {
		return "", err
	}
	if outcome == negotiation.NegotiationExpired {
		observability.NegotiationsResolved.WithLabelValues(string(models.NegotiationStatusExpired)).Inc()
		logger.InfoCtx(ctx, "Negotiation expired", logger.String("negotiation_id", id.String()))
	}
	return outcome, nil
}

func (uc *NegotiationUC) event(n *models.Negotiation, recipient models.Party, msgType models.MessageType, price int, message string) models.NegotiationEvent {
	return models.NegotiationEvent{
		NegotiationID: n.ID.String(),
		BookingID:     n.BookingID.String(),
		DriverID:      n.DriverID.String(),
		CustomerID:    n.CustomerID,
		Recipient:     recipient,
		Type:          msgType,
		Price:         price,
		Message:       message,
	}
}

// publish runs a gateway publish and logs failures without propagating them;
// notifications never fail a state transition.
func (uc *NegotiationUC) publish(ctx context.Context, what string, fn func() error) {
	if err := fn(); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("event", what),
			logger.Err(err))
	}
}
