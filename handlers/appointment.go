package handlers

import (
	"context"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpecialtyLister lists the treatment names offered by the portal.
type SpecialtyLister interface {
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
}

type AppointmentHandler struct {
	InProcess   availability.Calculator
	Aggregation availability.Calculator
	Specialties SpecialtyLister
}

// GetAppointmentOptions handles GET /appointmentOptions?date=.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	h.respondAvailability(c, h.InProcess)
}

// GetAppointmentOptionsV2 handles GET /v2/appointmentOptions?date=.
func (h *AppointmentHandler) GetAppointmentOptionsV2(c *gin.Context) {
	h.respondAvailability(c, h.Aggregation)
}

func (h *AppointmentHandler) respondAvailability(c *gin.Context, calc availability.Calculator) {
	date := c.Query("date")
	views, err := calc.Compute(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("Availability computation failed", zap.String("date", date), zap.Error(err))
		utils.StorageFailure(c, "failed to load appointment options", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetSpecialties handles GET /appointmentSpecialty.
func (h *AppointmentHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Specialties.GetSpecialties(c.Request.Context())
	if err != nil {
		utils.StorageFailure(c, "failed to load specialties", err)
		return
	}
	c.JSON(http.StatusOK, specialties)
}
