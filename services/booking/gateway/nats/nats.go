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

// BookingGW publishes booking lifecycle events to NATS
type BookingGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewBookingGW creates a new booking NATS gateway
func NewBookingGW(client *natspkg.Client, retrier *retry.Retrier) *BookingGW {
	return &BookingGW{
		natsClient: client,
		retrier:    retrier,
	}
}

func (g *BookingGW) publish(ctx context.Context, subject string, payload interface{}) error {
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

// PublishBookingCreated announces a new open booking to drivers.
func (g *BookingGW) PublishBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error {
	return g.publish(ctx, constants.SubjectBookingCreated, event)
}

// PublishBookingAccepted notifies the customer that a driver claimed the booking.
func (g *BookingGW) PublishBookingAccepted(ctx context.Context, event models.BookingAcceptedEvent) error {
	return g.publish(ctx, constants.SubjectBookingAccepted, event)
}

// PublishBookingCancelled notifies the assigned driver of a cancellation.
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, event models.BookingCancelledEvent) error {
	return g.publish(ctx, constants.SubjectBookingCancelled, event)
}

// PublishBookingReopened notifies the customer the driver backed out.
func (g *BookingGW) PublishBookingReopened(ctx context.Context, event models.BookingReopenedEvent) error {
	return g.publish(ctx, constants.SubjectBookingReopened, event)
}

// PublishRideStatus sends the customer a ride progress update.
func (g *BookingGW) PublishRideStatus(ctx context.Context, event models.RideStatusEvent) error {
	return g.publish(ctx, constants.SubjectRideStatus, event)
}

// PublishRideCompleted announces a settled ride.
func (g *BookingGW) PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent) error {
	return g.publish(ctx, constants.SubjectRideCompleted, event)
}
