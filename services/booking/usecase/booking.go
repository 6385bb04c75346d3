package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/observability"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
)

// CreateBooking validates and stores a new pending booking and announces it
// to available drivers.
func (uc *BookingUC) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.BookingRequest, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, fmt.Errorf("customer name and phone are required")
	}
	if req.PickupLocation == "" || req.Destination == "" {
		return nil, fmt.Errorf("pickup location and destination are required")
	}

	now := uc.now()
	req.ID = uuid.New()
	req.Status = models.BookingStatusPending
	req.CreatedAt = now
	req.ExpiresAt = now.Add(uc.expiryWindow())

	if err := uc.bookingRepo.CreateBooking(ctx, req); err != nil {
		return nil, err
	}
	observability.BookingsCreated.Inc()

	uc.publish(ctx, "booking created", func() error {
		return uc.bookingGW.PublishBookingCreated(ctx, models.BookingCreatedEvent{
			BookingID:      req.ID.String(),
			CustomerName:   req.CustomerName,
			PickupLocation: req.PickupLocation,
			Destination:    req.Destination,
			Fare:           req.Fare,
			PickupDate:     req.PickupDate,
			PickupTime:     req.PickupTime,
		})
	})

	logger.InfoCtx(ctx, "Booking created",
		logger.String("booking_id", req.ID.String()),
		logger.String("pickup", req.PickupLocation),
		logger.String("destination", req.Destination))
	return req, nil
}

// GetBooking loads one booking.
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	return uc.bookingRepo.GetBooking(ctx, id)
}

// ListOpenBookings returns acceptable bookings for the driver feed.
func (uc *BookingUC) ListOpenBookings(ctx context.Context) ([]*models.BookingRequest, error) {
	return uc.bookingRepo.ListOpenBookings(ctx)
}

// ListCustomerBookings returns a customer's booking history.
func (uc *BookingUC) ListCustomerBookings(ctx context.Context, customerPhone string) ([]*models.BookingRequest, error) {
	return uc.bookingRepo.ListCustomerBookings(ctx, customerPhone)
}

// GetActiveBookingByDriver returns the driver's accepted, in-progress
// booking, or nil when there is none.
func (uc *BookingUC) GetActiveBookingByDriver(ctx context.Context, driverID uuid.UUID) (*models.BookingRequest, error) {
	return uc.bookingRepo.GetActiveBookingByDriver(ctx, driverID)
}

// AcceptBooking claims a pending booking for a driver.
func (uc *BookingUC) AcceptBooking(ctx context.Context, id, driverID uuid.UUID) (booking.AcceptOutcome, error) {
	outcome, b, err := uc.bookingRepo.AcceptBooking(ctx, id, driverID)
	if err != nil {
		return "", err
	}
	observability.BookingAccepts.WithLabelValues(string(outcome)).Inc()

	if outcome == booking.AcceptAccepted {
		uc.publish(ctx, "booking accepted", func() error {
			return uc.bookingGW.PublishBookingAccepted(ctx, models.BookingAcceptedEvent{
				BookingID:     b.ID.String(),
				DriverID:      driverID.String(),
				CustomerPhone: b.CustomerPhone,
			})
		})
		logger.InfoCtx(ctx, "Booking accepted",
			logger.String("booking_id", id.String()),
			logger.String("driver_id", driverID.String()))
	}
	return outcome, nil
}

// CompleteRide finalizes a ride with its settled fare.
func (uc *BookingUC) CompleteRide(ctx context.Context, id, driverID uuid.UUID, fare int) (booking.CompleteOutcome, error) {
	outcome, b, err := uc.bookingRepo.CompleteRide(ctx, id, driverID, fare)
	if err != nil {
		return "", err
	}

	if outcome == booking.CompleteCompleted {
		observability.RidesCompleted.Inc()
		uc.publish(ctx, "ride completed", func() error {
			return uc.bookingGW.PublishRideCompleted(ctx, models.RideCompletedEvent{
				BookingID:     b.ID.String(),
				DriverID:      driverID.String(),
				CustomerPhone: b.CustomerPhone,
				Fare:          fare,
			})
		})
		uc.notifyRideStatus(ctx, b, models.RideStatusCompleted)
		logger.InfoCtx(ctx, "Ride completed",
			logger.String("booking_id", id.String()),
			logger.Int("fare", fare))
	}
	return outcome, nil
}

// RateRide records the customer's one-time rating for a completed ride.
func (uc *BookingUC) RateRide(ctx context.Context, id uuid.UUID, rating int, review string) (booking.RateOutcome, error) {
	if rating < 1 || rating > 5 {
		return booking.RateInvalidRating, nil
	}

	outcome, _, err := uc.bookingRepo.RateRide(ctx, id, rating, review)
	if err != nil {
		return "", err
	}
	if outcome == booking.RateRated {
		observability.RatingsRecorded.Inc()
		logger.InfoCtx(ctx, "Ride rated",
			logger.String("booking_id", id.String()),
			logger.Int("rating", rating))
	}
	return outcome, nil
}

// CancelBooking cancels a non-terminal booking and notifies the assigned
// driver, if any.
func (uc *BookingUC) CancelBooking(ctx context.Context, id uuid.UUID, reason string) (booking.CancelOutcome, error) {
	outcome, b, err := uc.bookingRepo.CancelBooking(ctx, id, reason)
	if err != nil {
		return "", err
	}

	if outcome == booking.CancelCancelled {
		event := models.BookingCancelledEvent{
			BookingID: b.ID.String(),
			Reason:    reason,
		}
		if b.AcceptedBy != nil {
			event.DriverID = b.AcceptedBy.String()
		}
		uc.publish(ctx, "booking cancelled", func() error {
			return uc.bookingGW.PublishBookingCancelled(ctx, event)
		})
		logger.InfoCtx(ctx, "Booking cancelled",
			logger.String("booking_id", id.String()),
			logger.String("reason", reason))
	}
	return outcome, nil
}

// ReopenBooking lets the assigned driver back out, restarting the pending
// window so other drivers can accept.
func (uc *BookingUC) ReopenBooking(ctx context.Context, id, driverID uuid.UUID) (booking.ReopenOutcome, error) {
	newExpiry := uc.now().Add(uc.expiryWindow())
	outcome, b, err := uc.bookingRepo.ReopenBooking(ctx, id, driverID, newExpiry)
	if err != nil {
		return "", err
	}

	if outcome == booking.ReopenReopened {
		uc.publish(ctx, "booking reopened", func() error {
			return uc.bookingGW.PublishBookingReopened(ctx, models.BookingReopenedEvent{
				BookingID:     b.ID.String(),
				CustomerPhone: b.CustomerPhone,
			})
		})
		logger.InfoCtx(ctx, "Booking reopened",
			logger.String("booking_id", id.String()),
			logger.String("driver_id", driverID.String()))
	}
	return outcome, nil
}

// AdvanceRideStatus moves the ride one step forward and tells the customer.
func (uc *BookingUC) AdvanceRideStatus(ctx context.Context, id, driverID uuid.UUID, target models.RideStatus) (booking.AdvanceOutcome, error) {
	outcome, b, err := uc.bookingRepo.AdvanceRideStatus(ctx, id, driverID, target)
	if err != nil {
		return "", err
	}

	if outcome == booking.AdvanceAdvanced {
		uc.notifyRideStatus(ctx, b, target)
		logger.InfoCtx(ctx, "Ride status advanced",
			logger.String("booking_id", id.String()),
			logger.String("ride_status", string(target)))
	}
	return outcome, nil
}

// DriverEarnings sums a driver's completed fares over a period.
func (uc *BookingUC) DriverEarnings(ctx context.Context, driverID uuid.UUID, from, to time.Time) (*models.DriverEarnings, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid earnings period")
	}
	return uc.bookingRepo.DriverEarnings(ctx, driverID, from, to)
}

func (uc *BookingUC) notifyRideStatus(ctx context.Context, b *models.BookingRequest, status models.RideStatus) {
	uc.publish(ctx, "ride status", func() error {
		return uc.bookingGW.PublishRideStatus(ctx, models.RideStatusEvent{
			BookingID:     b.ID.String(),
			CustomerPhone: b.CustomerPhone,
			RideStatus:    status,
			Message:       RideStatusMessage(status),
		})
	})
}

// publish runs a gateway publish and logs failures without propagating them;
// notifications never fail a state transition.
func (uc *BookingUC) publish(ctx context.Context, what string, fn func() error) {
	if err := fn(); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			logger.String("event", what),
			logger.Err(err))
	}
}

// RideStatusMessage is the customer-facing text for each ride step.
func RideStatusMessage(status models.RideStatus) string {
	switch status {
	case models.RideStatusConfirmed:
		return "Your driver has confirmed the ride"
	case models.RideStatusEnRoute:
		return "Your driver is on the way"
	case models.RideStatusArrived:
		return "Your driver has arrived at the pickup point"
	case models.RideStatusInProgress:
		return "Your ride is in progress"
	case models.RideStatusCompleted:
		return "Your ride is complete. Thank you for riding with TaxiTao"
	}
	return ""
}
