package handlers

import (
	"errors"
	"net/http"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	BookingService booking.BookingService
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	}

	intent, err := h.BookingService.CreatePaymentIntent(c.Request.Context(), req.Price)
	if errors.Is(err, booking.ErrInvalidAmount) {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment amount", "")
		return
	}
	if err != nil {
		getLogger(c).Error("Payment intent failed", zap.Float64("price", req.Price), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment processor unavailable", "")
		return
	}
	c.JSON(http.StatusOK, intent)
}

// PostPayment handles POST /payments.
func (h *PaymentHandler) PostPayment(c *gin.Context) {
	var req models.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment", err.Error())
		return
	}

	id, err := h.BookingService.RecordPayment(c.Request.Context(), req)
	switch {
	case errors.Is(err, booking.ErrInvalidBookingID):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", req.BookingID)
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", req.BookingID)
	case err != nil:
		utils.StorageFailure(c, "failed to record payment", err)
	default:
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
	}
}
