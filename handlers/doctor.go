package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

// PostDoctor handles POST /doctors.
func (h *DoctorHandler) PostDoctor(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor", err.Error())
		return
	}

	id, err := h.DoctorService.AddDoctor(c.Request.Context(), req)
	if err != nil {
		utils.StorageFailure(c, "failed to add doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// GetDoctors handles GET /doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		utils.StorageFailure(c, "failed to load doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.DoctorService.RemoveDoctor(c.Request.Context(), id)
	if errors.Is(err, doctor.ErrInvalidDoctorID) {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor id", id)
		return
	}
	if err != nil {
		utils.StorageFailure(c, "failed to remove doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
