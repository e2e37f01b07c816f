package models

// LabTest is a catalog entry. Prices are per-lab offers in USD.
type LabTest struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	Category        string     `gorm:"size:30;not null;index" json:"category"` // blood, urine, hormone, ...
	PreparationTime string     `gorm:"size:50" json:"preparation_time"`
	ReportTime      string     `gorm:"size:50" json:"report_time"`
	Prices          []LabPrice `gorm:"foreignKey:LabTestID" json:"prices"`
}

// LabPrice is one lab's offer for a test: current price and the struck-through
// original price.
type LabPrice struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	LabTestID     uint    `gorm:"not null;index" json:"lab_test_id"`
	Lab           string  `gorm:"size:50;not null" json:"lab"`
	Price         float64 `gorm:"not null" json:"price"`
	OriginalPrice float64 `gorm:"not null" json:"original_price"`
}

type AddToCartInput struct {
	TestID uint    `json:"test_id" binding:"required"`
	Lab    string  `json:"lab" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
}

type ReferralInput struct {
	Code string `json:"code"`
}
