package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/match"
)

// MatchHandler handles HTTP requests for matching and the driver registry
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// RegisterRoutes registers the match handler routes
func (h *MatchHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/matches", h.FindDrivers)

	drivers := e.Group("/drivers")
	drivers.POST("", h.RegisterDriver)
	drivers.GET("/:driverID", h.GetDriver)
	drivers.PUT("/:driverID/status", h.UpdateDriverStatus)
}

// FindDrivers ranks drivers for a route. Public callers get only drivers
// with an active subscription; internal callers pass all=true.
func (h *MatchHandler) FindDrivers(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return BadRequestResponse(c, "from and to are required")
	}
	publicOnly := c.QueryParam("all") != "true"

	result, err := h.matchUC.FindDrivers(c.Request().Context(), from, to, publicOnly)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to find drivers")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Driver matches", result)
}

// RegisterDriverRequest is the request body for driver registration
type RegisterDriverRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	CurrentLocation string `json:"current_location"`
}

// RegisterDriver creates a new driver profile
func (h *MatchHandler) RegisterDriver(c echo.Context) error {
	var req RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Name == "" || req.Phone == "" {
		return BadRequestResponse(c, "name and phone are required")
	}

	driver := &models.Driver{
		Name:            req.Name,
		Phone:           req.Phone,
		CurrentLocation: req.CurrentLocation,
	}
	if err := h.matchUC.RegisterDriver(c.Request().Context(), driver); err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to register driver")
	}

	return SuccessResponseWithData(c, http.StatusCreated, "Driver registered", driver)
}

// GetDriver returns one driver profile
func (h *MatchHandler) GetDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	driver, err := h.matchUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, match.ErrDriverNotFound) {
			return ErrorResponseHandler(c, http.StatusNotFound, "Driver not found")
		}
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load driver")
	}

	return SuccessResponseWithData(c, http.StatusOK, "Driver", driver)
}

// UpdateDriverStatusRequest is the request body for a status change
type UpdateDriverStatusRequest struct {
	Status models.DriverStatus `json:"status"`
}

// UpdateDriverStatus flips a driver's availability
func (h *MatchHandler) UpdateDriverStatus(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	var req UpdateDriverStatusRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.matchUC.UpdateDriverStatus(c.Request().Context(), driverID, req.Status); err != nil {
		if errors.Is(err, match.ErrDriverNotFound) {
			return ErrorResponseHandler(c, http.StatusNotFound, "Driver not found")
		}
		return BadRequestResponse(c, err.Error())
	}

	return SuccessResponseWithData(c, http.StatusOK, "Driver status updated", nil)
}
