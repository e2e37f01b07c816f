package models

import (
	"encoding/json"
	"time"
)

// LedgerRecord is one serialized appointment ledger. Each user owns exactly
// one row; Data holds the whole appointment array as JSON and is rewritten
// as a unit on every mutation.
type LedgerRecord struct {
	ID        uint64          `gorm:"primaryKey" json:"id"`
	UserID    uint64          `gorm:"not null;uniqueIndex:idx_user_slot" json:"user_id"`
	Slot      string          `gorm:"size:50;not null;uniqueIndex:idx_user_slot" json:"slot"`
	Data      json.RawMessage `gorm:"type:json" json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (LedgerRecord) TableName() string {
	return "ledger_records"
}
