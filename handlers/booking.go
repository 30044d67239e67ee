package handlers

import (
	"errors"
	"net/http"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

// GetBookings handles GET /bookings?email=. Patients may only list their own bookings.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	if email != middleware.DecodedEmail(c) {
		getLogger(c).Warn("Booking list requested for another patient", zap.String("email", email))
		utils.AbortAuth(c, utils.ErrAuthorizationDenied)
		return
	}

	bookings, err := h.BookingService.GetPatientBookings(c.Request.Context(), email)
	if err != nil {
		utils.StorageFailure(c, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	b, err := h.BookingService.GetBooking(c.Request.Context(), id)
	switch {
	case errors.Is(err, booking.ErrInvalidBookingID):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", id)
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", id)
	case err != nil:
		utils.StorageFailure(c, "failed to load booking", err)
	default:
		c.JSON(http.StatusOK, b)
	}
}

// PostBooking handles POST /bookings. A duplicate is answered with 200 and
// admitted=false.
func (h *BookingHandler) PostBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}

	result, err := h.BookingService.Admit(c.Request.Context(), req)
	if err != nil {
		utils.StorageFailure(c, "failed to create booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
