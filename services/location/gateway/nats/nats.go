package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/constants"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	natspkg "github.com/sieless/Taxi-Tao-sub000/internal/pkg/nats"
)

// LocationGW publishes driver position updates to NATS. Location updates are
// frequent and disposable, so there is no retry here; a dropped fix is
// replaced by the next one.
type LocationGW struct {
	natsClient *natspkg.Client
}

// NewLocationGW creates a new location NATS gateway
func NewLocationGW(client *natspkg.Client) *LocationGW {
	return &LocationGW{
		natsClient: client,
	}
}

// PublishDriverLocation broadcasts a driver's latest position.
func (g *LocationGW) PublishDriverLocation(ctx context.Context, event models.DriverLocationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal driver location event: %w", err)
	}
	if err := g.natsClient.Publish(constants.SubjectDriverLocation, data); err != nil {
		return fmt.Errorf("failed to publish driver location event: %w", err)
	}
	return nil
}
