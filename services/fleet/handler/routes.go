package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/middleware"
	"github.com/ambunet/dispatch/internal/pkg/models"
	natspkg "github.com/ambunet/dispatch/internal/pkg/nats"
	"github.com/ambunet/dispatch/services/fleet"
	httpHandler "github.com/ambunet/dispatch/services/fleet/handler/http"
	natsHandler "github.com/ambunet/dispatch/services/fleet/handler/nats"
)

// Handler combines all handlers for the fleet registry
type Handler struct {
	fleetHTTP *httpHandler.FleetHandler
	fleetNATS *natsHandler.FleetHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	fleetUC fleet.FleetUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		fleetHTTP: httpHandler.NewFleetHandler(fleetUC),
		fleetNATS: natsHandler.NewFleetHandler(fleetUC, natsClient),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	ambulances := e.Group("/api/ambulances", auth)
	ambulances.GET("", h.fleetHTTP.ListAmbulances, middleware.RequireRoles(models.RoleProvider, models.RoleAdmin))
	ambulances.GET("/nearest", h.fleetHTTP.FindNearest)
	ambulances.GET("/nearby-live", h.fleetHTTP.NearbyLive)
	ambulances.POST("", h.fleetHTTP.RegisterAmbulance, middleware.RequireRoles(models.RoleProvider, models.RoleAdmin))
	ambulances.PATCH("/:ambulanceID/active", h.fleetHTTP.SetAmbulanceActive, middleware.RequireRoles(models.RoleProvider, models.RoleAdmin))

	drivers := e.Group("/api/drivers", auth)
	drivers.PATCH("/status", h.fleetHTTP.UpdateDriverStatus, middleware.RequireRoles(models.RoleDriver))
	drivers.GET("/:driverID", h.fleetHTTP.GetDriverProfile)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.fleetNATS.InitNATSConsumers()
}
