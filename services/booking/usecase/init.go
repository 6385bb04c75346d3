package usecase

import (
	"time"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
)

type BookingUC struct {
	cfg         *models.Config
	bookingRepo booking.BookingRepo
	bookingGW   booking.BookingGW
	now         func() time.Time
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo booking.BookingRepo,
	bookingGW booking.BookingGW,
) *BookingUC {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		now:         time.Now,
	}
}

func (uc *BookingUC) expiryWindow() time.Duration {
	minutes := uc.cfg.Booking.ExpiryMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}
