package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"curaone-backend/internal/config"
	"curaone-backend/internal/ledger"
	"curaone-backend/internal/models"
	"curaone-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// openLedger loads the caller's appointment ledger from the database-backed
// store. Returns false after writing the error response.
func openLedger(c *gin.Context) (*ledger.Ledger, uint64, bool) {
	userID := c.GetUint64("userID")

	l, err := ledger.Open(ledger.NewGormStore(config.DB, userID))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to load appointments", err.Error())
		return nil, 0, false
	}
	return l, userID, true
}

// BookAppointment creates an appointment from the booking form and records
// the patient contact details alongside it.
func BookAppointment(c *gin.Context) {
	var input models.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid booking form", err.Error())
		return
	}

	l, userID, ok := openLedger(c)
	if !ok {
		return
	}

	appointment, err := l.Book(ledger.BookRequest{
		Doctor:    input.Doctor,
		Specialty: input.Specialty,
		Date:      input.Date,
		Time:      input.Time,
		Type:      input.Type,
		Hospital:  input.Hospital,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	record := models.PatientRecord{
		UserID:        userID,
		AppointmentID: appointment.ID,
		Name:          input.PatientName,
		Age:           input.PatientAge,
		Phone:         input.PatientPhone,
		Email:         input.PatientEmail,
		Symptoms:      input.Symptoms,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save patient details", nil)
		return
	}

	notifyUser(userID, "Appointment Booked!",
		fmt.Sprintf("Your %s appointment has been scheduled for %s at %s.", appointment.Type, appointment.Date, appointment.Time),
		map[string]string{"appointment_id": fmt.Sprint(appointment.ID)})

	utils.APIResponse(c, http.StatusCreated, true, "Appointment booked", appointment)
}

// GetAppointments lists the caller's appointments in booking order.
func GetAppointments(c *gin.Context) {
	l, _, ok := openLedger(c)
	if !ok {
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Your appointments", l.List())
}

// RescheduleAppointment moves an appointment to a new date and time slot.
func RescheduleAppointment(c *gin.Context) {
	id := utils.StringToInt64(c.Param("id"))

	var input models.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid reschedule request", err.Error())
		return
	}

	l, userID, ok := openLedger(c)
	if !ok {
		return
	}

	appointment, err := l.Reschedule(id, input.Date, input.Time)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	notifyUser(userID, "Appointment Rescheduled!",
		fmt.Sprintf("Your appointment has been moved to %s at %s.", appointment.Date, appointment.Time),
		map[string]string{"appointment_id": fmt.Sprint(appointment.ID)})

	utils.APIResponse(c, http.StatusOK, true, "Appointment rescheduled", appointment)
}

// GetSessionLink returns the virtual consultation room for an appointment.
func GetSessionLink(c *gin.Context) {
	id := utils.StringToInt64(c.Param("id"))

	l, _, ok := openLedger(c)
	if !ok {
		return
	}

	appointment, err := l.Get(id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	if appointment.Type != ledger.TypeVirtual {
		utils.APIResponse(c, http.StatusBadRequest, false, ledger.ErrNotVirtual.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Session link", gin.H{
		"url": appointment.SessionURL(),
	})
}

func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
	case errors.Is(err, ledger.ErrPastDate),
		errors.Is(err, ledger.ErrInvalidDate),
		errors.Is(err, ledger.ErrInvalidSlot),
		errors.Is(err, ledger.ErrInvalidSpecialty),
		errors.Is(err, ledger.ErrHospitalRequired):
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
	default:
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save appointment", err.Error())
	}
}

// notifyUser pushes to the user's registered device, if any.
func notifyUser(userID uint64, title, body string, data map[string]string) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return
	}
	utils.SendNotification(user.FCMToken, title, body, data)
}
