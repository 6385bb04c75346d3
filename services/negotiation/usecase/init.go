package usecase

import (
	"time"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation"
)

type NegotiationUC struct {
	cfg             *models.Config
	negotiationRepo negotiation.NegotiationRepo
	negotiationGW   negotiation.NegotiationGW
	now             func() time.Time
}

// NewNegotiationUC creates a new negotiation use case
func NewNegotiationUC(
	cfg *models.Config,
	negotiationRepo negotiation.NegotiationRepo,
	negotiationGW negotiation.NegotiationGW,
) *NegotiationUC {
	return &NegotiationUC{
		cfg:             cfg,
		negotiationRepo: negotiationRepo,
		negotiationGW:   negotiationGW,
		now:             time.Now,
	}
}

func (uc *NegotiationUC) expiryWindow() time.Duration {
	minutes := uc.cfg.Negotiation.ExpiryMinutes
	if minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}
