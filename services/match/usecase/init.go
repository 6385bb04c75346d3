package usecase

import (
	"github.com/sieless/Taxi-Tao-sub000/services/match"
	"github.com/sieless/Taxi-Tao-sub000/services/pricing"
)

type MatchUC struct {
	matchRepo   match.MatchRepo
	pricingRepo pricing.PricingRepo
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	matchRepo match.MatchRepo,
	pricingRepo pricing.PricingRepo,
) *MatchUC {
	return &MatchUC{
		matchRepo:   matchRepo,
		pricingRepo: pricingRepo,
	}
}
