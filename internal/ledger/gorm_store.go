package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"curaone-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot name the appointment array is stored under, one row per user.
const AppointmentSlot = "appointments"

// GormStore persists a user's ledger as a single JSON blob row, mirroring
// the fixed-slot layout the web client used.
type GormStore struct {
	DB     *gorm.DB
	UserID uint64
	Slot   string
}

func NewGormStore(db *gorm.DB, userID uint64) *GormStore {
	return &GormStore{DB: db, UserID: userID, Slot: AppointmentSlot}
}

func (s *GormStore) Load() ([]Appointment, error) {
	var record models.LedgerRecord
	err := s.DB.Where("user_id = ? AND slot = ?", s.UserID, s.Slot).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load ledger record: %w", err)
	}

	var appointments []Appointment
	if err := json.Unmarshal(record.Data, &appointments); err != nil {
		return nil, fmt.Errorf("decode ledger record: %w", err)
	}
	return appointments, nil
}

func (s *GormStore) Save(appointments []Appointment) error {
	data, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	record := models.LedgerRecord{
		UserID: s.UserID,
		Slot:   s.Slot,
		Data:   data,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("save ledger record: %w", err)
	}
	return nil
}
