package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/internal/utils"
	"github.com/ambunet/dispatch/services/fleet"
)

// FleetHandler handles HTTP requests for the fleet registry
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

func parseCoordinates(c echo.Context) (lat, lng float64, err error) {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "lat and lng are required")
	}
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "lat must be a number")
	}
	lng, err = strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "lng must be a number")
	}
	return lat, lng, nil
}

// ListAmbulances handles the available ambulance listing
func (h *FleetHandler) ListAmbulances(c echo.Context) error {
	var providerID *uuid.UUID
	if raw := c.QueryParam("provider_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid provider_id")
		}
		providerID = &id
	}

	ambulances, err := h.fleetUC.ListAvailable(c.Request().Context(), providerID)
	if err != nil {
		logger.Error("Failed to list ambulances", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ambulances retrieved successfully", ambulances)
}

// FindNearest handles the nearest-ambulance lookup
func (h *FleetHandler) FindNearest(c echo.Context) error {
	lat, lng, err := parseCoordinates(c)
	if err != nil {
		return err
	}

	ambulances, err := h.fleetUC.FindNearest(c.Request().Context(), lat, lng)
	if err != nil {
		logger.Error("Failed to find nearest ambulances", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearest ambulances retrieved successfully", ambulances)
}

// NearbyLive handles the live geo index lookup
func (h *FleetHandler) NearbyLive(c echo.Context) error {
	lat, lng, err := parseCoordinates(c)
	if err != nil {
		return err
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	nearby, err := h.fleetUC.NearbyLive(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		logger.Error("Failed to query live geo index", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby ambulances retrieved successfully", nearby)
}

// RegisterAmbulance handles ambulance registration
func (h *FleetHandler) RegisterAmbulance(c echo.Context) error {
	var req models.RegisterAmbulanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ambulance, err := h.fleetUC.RegisterAmbulance(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register ambulance",
			logger.String("vehicle_number", req.VehicleNumber),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ambulance registered successfully", ambulance)
}

// SetAmbulanceActive handles flipping an ambulance between available and inactive
func (h *FleetHandler) SetAmbulanceActive(c echo.Context) error {
	ambulanceID, err := uuid.Parse(c.Param("ambulanceID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ambulance ID")
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.fleetUC.SetAmbulanceActive(c.Request().Context(), ambulanceID, req.Active); err != nil {
		logger.Error("Failed to update ambulance active state",
			logger.String("ambulance_id", ambulanceID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ambulance updated successfully", nil)
}

// UpdateDriverStatus handles the driver online toggle
func (h *FleetHandler) UpdateDriverStatus(c echo.Context) error {
	var req models.DriverStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.fleetUC.ToggleDriverOnline(c.Request().Context(), req); err != nil {
		logger.Error("Failed to update driver status",
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated successfully", nil)
}

// GetDriverProfile handles the driver profile lookup
func (h *FleetHandler) GetDriverProfile(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	profile, err := h.fleetUC.GetDriverProfile(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to get driver profile",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver profile retrieved successfully", profile)
}
