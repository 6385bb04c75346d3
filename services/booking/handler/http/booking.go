package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
)

// BookingHandler handles HTTP requests for the booking lifecycle
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// RegisterRoutes registers the booking handler routes
func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:bookingID", h.GetBooking)
	bookings.POST("/:bookingID/accept", h.AcceptBooking)
	bookings.POST("/:bookingID/complete", h.CompleteRide)
	bookings.POST("/:bookingID/rate", h.RateRide)
	bookings.POST("/:bookingID/cancel", h.CancelBooking)
	bookings.POST("/:bookingID/reopen", h.ReopenBooking)
	bookings.POST("/:bookingID/ride-status", h.AdvanceRideStatus)

	e.GET("/drivers/:driverID/earnings", h.DriverEarnings)
}

func bookingIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("bookingID"))
}

// CreateBookingRequest is the request body for creating a booking
type CreateBookingRequest struct {
	CustomerID     string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	CustomerPhone  string  `json:"customer_phone"`
	PickupLocation string  `json:"pickup_location"`
	Destination    string  `json:"destination"`
	DestLatitude   float64 `json:"dest_latitude"`
	DestLongitude  float64 `json:"dest_longitude"`
	PickupDate     string  `json:"pickup_date"`
	PickupTime     string  `json:"pickup_time"`
	Fare           int     `json:"fare"`
}

// CreateBooking creates a new pending booking
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	b := &models.BookingRequest{
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		DestLatitude:   req.DestLatitude,
		DestLongitude:  req.DestLongitude,
		PickupDate:     req.PickupDate,
		PickupTime:     req.PickupTime,
		Fare:           req.Fare,
	}

	created, err := h.bookingUC.CreateBooking(c.Request().Context(), b)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}
	return SuccessResponseWithData(c, http.StatusCreated, "Booking created", created)
}

// ListBookings returns open bookings, or a customer's history with ?phone=.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	if phone := c.QueryParam("phone"); phone != "" {
		bookings, err := h.bookingUC.ListCustomerBookings(c.Request().Context(), phone)
		if err != nil {
			return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list bookings")
		}
		return SuccessResponseWithData(c, http.StatusOK, "Customer bookings", bookings)
	}

	bookings, err := h.bookingUC.ListOpenBookings(c.Request().Context())
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list bookings")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Open bookings", bookings)
}

// GetBooking returns one booking
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load booking")
	}
	if b == nil {
		return ErrorResponseHandler(c, http.StatusNotFound, "Booking not found")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Booking", b)
}

// DriverActionRequest carries the acting driver for claim/complete/reopen
type DriverActionRequest struct {
	DriverID string `json:"driver_id"`
	Fare     int    `json:"fare,omitempty"`
}

// AcceptBooking claims a pending booking for a driver
func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	var req DriverActionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	outcome, err := h.bookingUC.AcceptBooking(c.Request().Context(), id, driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to accept booking")
	}

	switch outcome {
	case booking.AcceptAccepted:
		return SuccessResponseWithData(c, http.StatusOK, "Booking accepted", outcomeBody(outcome))
	case booking.AcceptAlreadyTaken:
		return c.JSON(http.StatusConflict, outcomeBody(outcome))
	case booking.AcceptExpired:
		return c.JSON(http.StatusGone, outcomeBody(outcome))
	default:
		return c.JSON(http.StatusNotFound, outcomeBody(outcome))
	}
}

// CompleteRide finalizes a ride with its fare
func (h *BookingHandler) CompleteRide(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	var req DriverActionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}
	if req.Fare <= 0 {
		return BadRequestResponse(c, "fare must be positive")
	}

	outcome, err := h.bookingUC.CompleteRide(c.Request().Context(), id, driverID, req.Fare)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to complete ride")
	}

	switch outcome {
	case booking.CompleteCompleted:
		return SuccessResponseWithData(c, http.StatusOK, "Ride completed", outcomeBody(outcome))
	case booking.CompleteWrongDriver:
		return c.JSON(http.StatusForbidden, outcomeBody(outcome))
	case booking.CompleteNotAccepted:
		return c.JSON(http.StatusConflict, outcomeBody(outcome))
	default:
		return c.JSON(http.StatusNotFound, outcomeBody(outcome))
	}
}

// RateRideRequest is the request body for rating a completed ride
type RateRideRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// RateRide records the customer's rating
func (h *BookingHandler) RateRide(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	var req RateRideRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.bookingUC.RateRide(c.Request().Context(), id, req.Rating, req.Review)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to rate ride")
	}

	switch outcome {
	case booking.RateRated:
		return SuccessResponseWithData(c, http.StatusOK, "Ride rated", outcomeBody(outcome))
	case booking.RateInvalidRating:
		return c.JSON(http.StatusBadRequest, outcomeBody(outcome))
	case booking.RateNotFound:
		return c.JSON(http.StatusNotFound, outcomeBody(outcome))
	default:
		return c.JSON(http.StatusConflict, outcomeBody(outcome))
	}
}

// CancelBookingRequest is the request body for cancelling a booking
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking cancels a non-terminal booking
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	var req CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.bookingUC.CancelBooking(c.Request().Context(), id, req.Reason)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to cancel booking")
	}

	switch outcome {
	case booking.CancelCancelled:
		return SuccessResponseWithData(c, http.StatusOK, "Booking cancelled", outcomeBody(outcome))
	case booking.CancelAlreadyTerminal:
		return c.JSON(http.StatusConflict, outcomeBody(outcome))
	default:
		return c.JSON(http.StatusNotFound, outcomeBody(outcome))
	}
}

// ReopenBooking lets the assigned driver back out of an accepted booking
func (h *BookingHandler) ReopenBooking(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	var req DriverActionRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	outcome, err := h.bookingUC.ReopenBooking(c.Request().Context(), id, driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to reopen booking")
	}

	switch outcome {
	case booking.ReopenReopened:
		return SuccessResponseWithData(c, http.StatusOK, "Booking reopened", outcomeBody(outcome))
	case booking.ReopenWrongDriver:
		return c.JSON(http.StatusForbidden, outcomeBody(outcome))
	case booking.ReopenNotAccepted:
		return c.JSON(http.StatusConflict, outcomeBody(outcome))
	default:
		return c.JSON(http.StatusNotFound, outcomeBody(outcome))
	}
}

// AdvanceRideStatusRequest is the request body for a ride progress update
type AdvanceRideStatusRequest struct {
	DriverID string            `json:"driver_id"`
	Status   models.RideStatus `json:"status"`
}

// AdvanceRideStatus moves the ride one step forward
func (h *BookingHandler) AdvanceRideStatus(c echo.Context) error {
	id, err := bookingIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	var req AdvanceRideStatusRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	outcome, err := h.bookingUC.AdvanceRideStatus(c.Request().Context(), id, driverID, req.Status)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to advance ride status")
	}

	switch outcome {
	case booking.AdvanceAdvanced:
		return SuccessResponseWithData(c, http.StatusOK, "Ride status advanced", outcomeBody(outcome))
	case booking.AdvanceWrongDriver:
		return c.JSON(http.StatusForbidden, outcomeBody(outcome))
	case booking.AdvanceNotFound:
		return c.JSON(http.StatusNotFound, outcomeBody(outcome))
	default:
		return c.JSON(http.StatusConflict, outcomeBody(outcome))
	}
}

// DriverEarnings sums completed fares for a driver over a date range
func (h *BookingHandler) DriverEarnings(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	from, err := parseDateParam(c.QueryParam("from"), time.Time{})
	if err != nil {
		return BadRequestResponse(c, "Invalid from date")
	}
	to, err := parseDateParam(c.QueryParam("to"), time.Now())
	if err != nil {
		return BadRequestResponse(c, "Invalid to date")
	}

	earnings, err := h.bookingUC.DriverEarnings(c.Request().Context(), driverID, from, to)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load earnings")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Driver earnings", earnings)
}

func parseDateParam(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", raw)
}

func outcomeBody(outcome interface{}) map[string]interface{} {
	return map[string]interface{}{"outcome": outcome}
}
