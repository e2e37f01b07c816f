package models

import "time"

// PatientRecord keeps the patient details submitted with a booking form.
// The appointment itself lives in the ledger snapshot; this row is the
// contact sheet the clinic follows up on.
type PatientRecord struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	AppointmentID int64     `gorm:"not null" json:"appointment_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Age           int       `json:"age"`
	Phone         string    `gorm:"size:20" json:"phone"`
	Email         string    `gorm:"size:100" json:"email"`
	Symptoms      string    `gorm:"type:text" json:"symptoms"`
	CreatedAt     time.Time `json:"created_at"`
}
