package models

// Hospital and Doctor make up the curated directory shown on the overview
// tab. Nearby-search results come from the POI provider instead and are not
// stored here.

type Hospital struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	Address     string   `gorm:"size:255" json:"address"`
	Phone       string   `gorm:"size:30" json:"phone"`
	Rating      float64  `gorm:"default:0" json:"rating"`
	Specialties string   `gorm:"size:255" json:"specialties"` // comma separated
	Doctors     []Doctor `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

type Doctor struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	Specialization  string  `gorm:"size:50;not null" json:"specialization"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `gorm:"default:0" json:"rating"`
	ConsultationFee float64 `json:"consultation_fee"`
	HospitalID      uint    `json:"hospital_id"`
}
