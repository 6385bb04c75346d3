package usecase

import (
	"time"

	"github.com/sieless/Taxi-Tao-sub000/services/pricing"
)

type PricingUC struct {
	pricingRepo pricing.PricingRepo
	now         func() time.Time
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(pricingRepo pricing.PricingRepo) *PricingUC {
	return &PricingUC{
		pricingRepo: pricingRepo,
		now:         time.Now,
	}
}
