package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/pricing"
)

// PricingHandler handles HTTP requests for pricing operations
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
	}
}

// RegisterRoutes registers the pricing handler routes
func (h *PricingHandler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/drivers/:driverID")
	drivers.PUT("/routes", h.SetRoutePrice)
	drivers.DELETE("/routes", h.DeleteRoutePrice)
	drivers.GET("/routes", h.ListRoutePrices)
	drivers.PUT("/modifiers", h.SetModifiers)
	drivers.GET("/pricing", h.GetProfile)
	drivers.GET("/quote", h.QuoteFare)
}

// SetRoutePriceRequest is the request body for setting a route price
type SetRoutePriceRequest struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Price       int     `json:"price"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

func driverIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("driverID"))
}

// SetRoutePrice creates or replaces a driver's route price
func (h *PricingHandler) SetRoutePrice(c echo.Context) error {
	driverID, err := driverIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	var req SetRoutePriceRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	route, err := h.pricingUC.SetRoutePrice(c.Request().Context(), driverID,
		req.From, req.To, req.Price, req.DistanceKm, req.DurationMin)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidLocation) || errors.Is(err, pricing.ErrInvalidPrice) {
			return BadRequestResponse(c, err.Error())
		}
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to save route price")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Route price saved", route)
}

// DeleteRoutePrice removes a driver's route price
func (h *PricingHandler) DeleteRoutePrice(c echo.Context) error {
	driverID, err := driverIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return BadRequestResponse(c, "from and to are required")
	}

	if err := h.pricingUC.DeleteRoutePrice(c.Request().Context(), driverID, from, to); err != nil {
		if errors.Is(err, pricing.ErrInvalidLocation) {
			return BadRequestResponse(c, err.Error())
		}
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to delete route price")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Route price deleted", nil)
}

// ListRoutePrices lists a driver's priced routes
func (h *PricingHandler) ListRoutePrices(c echo.Context) error {
	driverID, err := driverIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	routes, err := h.pricingUC.ListRoutePrices(c.Request().Context(), driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list route prices")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Route prices", routes)
}

// SetModifiers replaces a driver's fare modifiers
func (h *PricingHandler) SetModifiers(c echo.Context) error {
	driverID, err := driverIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	var modifiers models.PricingModifiers
	if err := c.Bind(&modifiers); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	modifiers.DriverID = driverID

	if err := h.pricingUC.SetModifiers(c.Request().Context(), &modifiers); err != nil {
		return BadRequestResponse(c, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Modifiers saved", modifiers)
}

// GetProfile returns a driver's full pricing profile
func (h *PricingHandler) GetProfile(c echo.Context) error {
	driverID, err := driverIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	profile, err := h.pricingUC.GetProfile(c.Request().Context(), driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load pricing profile")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Pricing profile", profile)
}

// QuoteFareResponse carries a computed fare quote
type QuoteFareResponse struct {
	DriverID string `json:"driver_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Fare     int    `json:"fare"`
}

// QuoteFare computes the current fare for a driver on a route
func (h *PricingHandler) QuoteFare(c echo.Context) error {
	driverID, err := driverIDParam(c)
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return BadRequestResponse(c, "from and to are required")
	}

	fare, err := h.pricingUC.QuoteFare(c.Request().Context(), driverID, from, to)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to compute fare")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Fare quote", QuoteFareResponse{
		DriverID: driverID.String(),
		From:     from,
		To:       to,
		Fare:     fare,
	})
}
