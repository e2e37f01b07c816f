package handlers

import (
	"net/http"

	"curaone-backend/internal/config"
	"curaone-backend/internal/models"
	"curaone-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetHospitals lists the curated hospital directory, best rated first.
func GetHospitals(c *gin.Context) {
	var hospitals []models.Hospital
	if err := config.DB.Order("rating desc").Find(&hospitals).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to load hospitals", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Hospitals", hospitals)
}

// GetDoctors lists the doctor directory, best rated first.
func GetDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := config.DB.Order("rating desc").Find(&doctors).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to load doctors", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctors", doctors)
}
