package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/constants"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	natspkg "github.com/sieless/Taxi-Tao-sub000/internal/pkg/nats"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/retry"
)

// NegotiationGW publishes negotiation events to NATS
type NegotiationGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewNegotiationGW creates a new negotiation NATS gateway
func NewNegotiationGW(client *natspkg.Client, retrier *retry.Retrier) *NegotiationGW {
	return &NegotiationGW{
		natsClient: client,
		retrier:    retrier,
	}
}

func (g *NegotiationGW) publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(subject, data)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish event",
			logger.String("subject", subject),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}

	logger.DebugCtx(ctx, "Published event", logger.String("subject", subject))
	return nil
}

// PublishNegotiationOffer sends an opening or counter offer to the counterparty.
func (g *NegotiationGW) PublishNegotiationOffer(ctx context.Context, event models.NegotiationEvent) error {
	return g.publish(ctx, constants.SubjectNegotiationOffer, event)
}

// PublishNegotiationAccepted announces an agreed price.
func (g *NegotiationGW) PublishNegotiationAccepted(ctx context.Context, event models.NegotiationEvent) error {
	return g.publish(ctx, constants.SubjectNegotiationAccepted, event)
}

// PublishNegotiationDeclined announces a rejected negotiation.
func (g *NegotiationGW) PublishNegotiationDeclined(ctx context.Context, event models.NegotiationEvent) error {
	return g.publish(ctx, constants.SubjectNegotiationDeclined, event)
}
