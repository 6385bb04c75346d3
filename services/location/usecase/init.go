package usecase

import (
	"time"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
	"github.com/sieless/Taxi-Tao-sub000/services/location"
)

type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	bookingUC    booking.BookingUC
	now          func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	locationGW location.LocationGW,
	bookingUC booking.BookingUC,
) *LocationUC {
	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		locationGW:   locationGW,
		bookingUC:    bookingUC,
		now:          time.Now,
	}
}

func (uc *LocationUC) arrivalRadius() float64 {
	radius := uc.cfg.Booking.ArrivalRadiusMeters
	if radius <= 0 {
		radius = 100
	}
	return radius
}
