package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/internal/utils"
	"github.com/ambunet/dispatch/services/booking"
)

// BookingHandler handles HTTP requests for the booking coordinator
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// callerID returns the authenticated user from the JWT claims
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// CreateBooking handles booking creation for the authenticated user
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.UserID = userID

	b, err := h.bookingUC.CreateBooking(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.String("user_id", userID.String()),
			logger.String("ambulance_id", req.AmbulanceID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", b)
}

// ListBookings handles the authenticated user's booking history
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookings, err := h.bookingUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetBooking handles a single booking lookup
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		logger.Error("Failed to get booking",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", b)
}

// AcceptBooking handles a driver accepting a pending booking
func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.AcceptBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	b, err := h.bookingUC.AcceptBooking(c.Request().Context(), bookingID, req.DriverID)
	if err != nil {
		logger.Error("Failed to accept booking",
			logger.String("booking_id", bookingID.String()),
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking accepted successfully", b)
}

// CompleteBooking handles trip completion
func (h *BookingHandler) CompleteBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.CompleteBooking(c.Request().Context(), bookingID)
	if err != nil {
		logger.Error("Failed to complete booking",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking completed successfully", b)
}

// CancelBooking handles cancellation of a non-terminal booking
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		logger.Error("Failed to cancel booking",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", b)
}

// IncomingBooking handles a driver polling for their latest pending booking
func (h *BookingHandler) IncomingBooking(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	b, err := h.bookingUC.IncomingForDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Incoming booking retrieved successfully", b)
}

// DriverStats handles the driver earnings summary
func (h *BookingHandler) DriverStats(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	stats, err := h.bookingUC.DriverStats(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to get driver stats",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver stats retrieved successfully", stats)
}

// RecordReview handles review submission for a completed booking
func (h *BookingHandler) RecordReview(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.RecordReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	review, err := h.bookingUC.RecordReview(c.Request().Context(), userID, req)
	if err != nil {
		logger.Error("Failed to record review",
			logger.String("booking_id", req.BookingID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review recorded successfully", review)
}
