package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation"
)

// NegotiationHandler handles HTTP requests for fare negotiations
type NegotiationHandler struct {
	negotiationUC negotiation.NegotiationUC
}

// NewNegotiationHandler creates a new negotiation HTTP handler
func NewNegotiationHandler(negotiationUC negotiation.NegotiationUC) *NegotiationHandler {
	return &NegotiationHandler{
		negotiationUC: negotiationUC,
	}
}

// RegisterRoutes registers the negotiation handler routes
func (h *NegotiationHandler) RegisterRoutes(e *echo.Echo) {
	negotiations := e.Group("/negotiations")
	negotiations.POST("", h.OpenNegotiation)
	negotiations.GET("/:negotiationID", h.GetNegotiation)
	negotiations.POST("/:negotiationID/counter", h.CounterOffer)
	negotiations.POST("/:negotiationID/accept", h.AcceptOffer)
	negotiations.POST("/:negotiationID/decline", h.DeclineOffer)
	negotiations.POST("/:negotiationID/expire", h.CheckExpiration)

	e.GET("/drivers/:driverID/negotiations", h.ListPendingByDriver)
}

func negotiationIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("negotiationID"))
}

func parseParty(raw string) (models.Party, bool) {
	switch models.Party(raw) {
	case models.PartyCustomer:
		return models.PartyCustomer, true
	case models.PartyDriver:
		return models.PartyDriver, true
	}
	return "", false
}

// OpenNegotiationRequest is the request body for starting a negotiation
type OpenNegotiationRequest struct {
	BookingID     string `json:"booking_id"`
	DriverID      string `json:"driver_id"`
	CustomerID    string `json:"customer_id"`
	InitialPrice  int    `json:"initial_price"`
	ProposedPrice int    `json:"proposed_price"`
	Message       string `json:"message"`
}

// OpenNegotiation starts a haggle over a booking's fare
func (h *NegotiationHandler) OpenNegotiation(c echo.Context) error {
	var req OpenNegotiationRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return BadRequestResponse(c, "Invalid booking ID")
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	n, err := h.negotiationUC.OpenNegotiation(c.Request().Context(),
		bookingID, driverID, req.CustomerID, req.InitialPrice, req.ProposedPrice, req.Message)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}
	return SuccessResponseWithData(c, http.StatusCreated, "Negotiation opened", n)
}

// GetNegotiation returns one negotiation with its message log
func (h *NegotiationHandler) GetNegotiation(c echo.Context) error {
	id, err := negotiationIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid negotiation ID")
	}

	n, err := h.negotiationUC.GetNegotiation(c.Request().Context(), id)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load negotiation")
	}
	if n == nil {
		return ErrorResponseHandler(c, http.StatusNotFound, "Negotiation not found")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Negotiation", n)
}

// ListPendingByDriver returns a driver's live negotiations
func (h *NegotiationHandler) ListPendingByDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	negotiations, err := h.negotiationUC.ListPendingByDriver(c.Request().Context(), driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list negotiations")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Pending negotiations", negotiations)
}

// CounterOfferRequest is the request body for a counter offer
type CounterOfferRequest struct {
	Actor   string `json:"actor"`
	Price   int    `json:"price"`
	Message string `json:"message"`
}

// CounterOffer responds to the other side's offer with a new price
func (h *NegotiationHandler) CounterOffer(c echo.Context) error {
	id, err := negotiationIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid negotiation ID")
	}
	var req CounterOfferRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	actor, ok := parseParty(req.Actor)
	if !ok {
		return BadRequestResponse(c, "Invalid actor")
	}

	outcome, err := h.negotiationUC.CounterOffer(c.Request().Context(), id, actor, req.Price, req.Message)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to record counter offer")
	}
	return negotiationOutcomeResponse(c, outcome, "Counter offer recorded")
}

// ResolveRequest is the request body for accept/decline
type ResolveRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

// AcceptOffer settles the negotiation at the current offer
func (h *NegotiationHandler) AcceptOffer(c echo.Context) error {
	id, err := negotiationIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid negotiation ID")
	}
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	actor, ok := parseParty(req.Actor)
	if !ok {
		return BadRequestResponse(c, "Invalid actor")
	}

	outcome, err := h.negotiationUC.AcceptOffer(c.Request().Context(), id, actor)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to accept offer")
	}
	return negotiationOutcomeResponse(c, outcome, "Offer accepted")
}

// DeclineOffer ends the negotiation without agreement
func (h *NegotiationHandler) DeclineOffer(c echo.Context) error {
	id, err := negotiationIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid negotiation ID")
	}
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	actor, ok := parseParty(req.Actor)
	if !ok {
		return BadRequestResponse(c, "Invalid actor")
	}

	outcome, err := h.negotiationUC.DeclineOffer(c.Request().Context(), id, actor, req.Reason)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to decline offer")
	}
	return negotiationOutcomeResponse(c, outcome, "Offer declined")
}

// CheckExpiration flips a negotiation past its deadline to expired
func (h *NegotiationHandler) CheckExpiration(c echo.Context) error {
	id, err := negotiationIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid negotiation ID")
	}

	outcome, err := h.negotiationUC.CheckExpiration(c.Request().Context(), id)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to check expiration")
	}
	return negotiationOutcomeResponse(c, outcome, "Expiration checked")
}

func negotiationOutcomeResponse(c echo.Context, outcome negotiation.NegotiationOutcome, message string) error {
	body := map[string]interface{}{"outcome": outcome}
	switch outcome {
	case negotiation.NegotiationOK:
		return SuccessResponseWithData(c, http.StatusOK, message, body)
	case negotiation.NegotiationNotFound:
		return c.JSON(http.StatusNotFound, body)
	case negotiation.NegotiationExpired:
		return c.JSON(http.StatusGone, body)
	case negotiation.NegotiationInvalidPrice:
		return c.JSON(http.StatusBadRequest, body)
	default:
		return c.JSON(http.StatusConflict, body)
	}
}
