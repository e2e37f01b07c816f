package models

// BookAppointmentInput is the booking form payload. Patient contact fields
// are required at this boundary; hospital may be empty for virtual visits.
type BookAppointmentInput struct {
	PatientName  string `json:"patient_name" binding:"required"`
	PatientAge   int    `json:"patient_age" binding:"required"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	PatientEmail string `json:"patient_email" binding:"required,email"`
	Symptoms     string `json:"symptoms"`

	Doctor    string `json:"doctor" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=virtual physical"`
	Hospital  string `json:"hospital"`
}

type RescheduleInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
