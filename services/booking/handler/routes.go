package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/middleware"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/booking"
	httpHandler "github.com/ambunet/dispatch/services/booking/handler/http"
)

// Handler combines all handlers for the booking coordinator
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC booking.BookingUC, cfg *models.Config) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	bookings := e.Group("/api/bookings", auth)
	bookings.POST("", h.bookingHTTP.CreateBooking, middleware.RequireRoles(models.RoleUser, models.RoleAdmin))
	bookings.GET("", h.bookingHTTP.ListBookings)
	bookings.GET("/:bookingID", h.bookingHTTP.GetBooking)
	bookings.POST("/:bookingID/accept", h.bookingHTTP.AcceptBooking, middleware.RequireRoles(models.RoleDriver))
	bookings.POST("/:bookingID/complete", h.bookingHTTP.CompleteBooking, middleware.RequireRoles(models.RoleDriver))
	bookings.POST("/:bookingID/cancel", h.bookingHTTP.CancelBooking)

	drivers := e.Group("/api/drivers", auth)
	drivers.GET("/:driverID/incoming", h.bookingHTTP.IncomingBooking, middleware.RequireRoles(models.RoleDriver))
	drivers.GET("/:driverID/stats", h.bookingHTTP.DriverStats, middleware.RequireRoles(models.RoleDriver, models.RoleAdmin))

	reviews := e.Group("/api/reviews", auth)
	reviews.POST("", h.bookingHTTP.RecordReview, middleware.RequireRoles(models.RoleUser, models.RoleAdmin))
}
