package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/services/location"
)

// LocationHandler handles HTTP requests for driver positions
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// RegisterRoutes registers the location handler routes
func (h *LocationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/drivers/:driverID/location", h.UpdateDriverLocation)
	e.GET("/drivers/:driverID/location", h.GetDriverLocation)
	e.DELETE("/drivers/:driverID/location", h.RemoveDriver)
	e.GET("/drivers/nearby", h.NearbyDrivers)
}

// UpdateDriverLocationRequest is the request body for a position fix
type UpdateDriverLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateDriverLocation records a driver's position fix
func (h *LocationHandler) UpdateDriverLocation(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}
	var req UpdateDriverLocationRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	loc, err := h.locationUC.UpdateDriverLocation(c.Request().Context(), driverID, req.Latitude, req.Longitude)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}
	return SuccessResponseWithData(c, http.StatusOK, "Location updated", loc)
}

// GetDriverLocation returns the driver's last known position
func (h *LocationHandler) GetDriverLocation(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	loc, err := h.locationUC.GetDriverLocation(c.Request().Context(), driverID)
	if err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load driver location")
	}
	if loc == nil {
		return ErrorResponseHandler(c, http.StatusNotFound, "No location known for driver")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Driver location", loc)
}

// RemoveDriver takes a driver off the live map
func (h *LocationHandler) RemoveDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return BadRequestResponse(c, "Invalid driver ID")
	}

	if err := h.locationUC.RemoveDriver(c.Request().Context(), driverID); err != nil {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to remove driver")
	}
	return SuccessResponseWithData(c, http.StatusOK, "Driver removed from live map", nil)
}

// NearbyDrivers lists available drivers near a point
func (h *LocationHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return BadRequestResponse(c, "Invalid longitude")
	}
	radius := 1000.0
	if raw := c.QueryParam("radius"); raw != "" {
		if radius, err = strconv.ParseFloat(raw, 64); err != nil {
			return BadRequestResponse(c, "Invalid radius")
		}
	}

	drivers, err := h.locationUC.NearbyDrivers(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}
	return SuccessResponseWithData(c, http.StatusOK, "Nearby drivers", drivers)
}
