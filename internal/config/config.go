package config

import (
	"fmt"
	"log"
	"os"

	"curaone-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the MySQL connection and migrates the schema.
func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "curaone"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.PatientRecord{},
		&models.LedgerRecord{},
		&models.LabTest{},
		&models.LabPrice{},
		&models.Hospital{},
		&models.Doctor{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	DB = db
	log.Println("Database connected")

	seedCatalog()
	seedDirectory()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// seedCatalog loads the common lab tests on first boot. Prices are in USD;
// conversion to INR happens only at display time.
func seedCatalog() {
	var count int64
	DB.Model(&models.LabTest{}).Count(&count)
	if count > 0 {
		return
	}

	tests := []models.LabTest{
		{
			Name:            "Complete Blood Count",
			Category:        "blood",
			PreparationTime: "8 hours fasting",
			ReportTime:      "24 hours",
			Prices: []models.LabPrice{
				{Lab: "Lab A", Price: 25, OriginalPrice: 30},
				{Lab: "Lab B", Price: 28, OriginalPrice: 35},
			},
		},
		{
			Name:            "Urine Routine",
			Category:        "urine",
			PreparationTime: "No preparation",
			ReportTime:      "12 hours",
			Prices: []models.LabPrice{
				{Lab: "Lab A", Price: 15, OriginalPrice: 18},
				{Lab: "Lab C", Price: 14, OriginalPrice: 20},
			},
		},
		{
			Name:            "Thyroid Profile",
			Category:        "hormone",
			PreparationTime: "8 hours fasting",
			ReportTime:      "48 hours",
			Prices: []models.LabPrice{
				{Lab: "Lab B", Price: 50, OriginalPrice: 60},
				{Lab: "Lab C", Price: 48, OriginalPrice: 55},
			},
		},
	}

	if err := DB.Create(&tests).Error; err != nil {
		log.Printf("Warning: failed to seed lab test catalog: %v", err)
	}
}

// seedDirectory loads the hospital and doctor directory shown on the
// overview tab. Rating sourced offline, not from the POI provider.
func seedDirectory() {
	var count int64
	DB.Model(&models.Hospital{}).Count(&count)
	if count > 0 {
		return
	}

	hospitals := []models.Hospital{
		{Name: "City Care Multispeciality", Address: "12 MG Road, Bengaluru", Phone: "+91 80 4455 1200", Rating: 4.6, Specialties: "cardiology,neurology,general"},
		{Name: "Sunrise Children's Hospital", Address: "45 Park Street, Kolkata", Phone: "+91 33 2288 0900", Rating: 4.4, Specialties: "pediatrics,general"},
		{Name: "Orthocare Institute", Address: "8 Link Road, Mumbai", Phone: "+91 22 6677 3400", Rating: 4.2, Specialties: "orthopedics,dermatology"},
	}
	if err := DB.Create(&hospitals).Error; err != nil {
		log.Printf("Warning: failed to seed hospitals: %v", err)
		return
	}

	doctors := []models.Doctor{
		{Name: "Dr. Rasmita Singh", Specialization: "cardiology", ExperienceYears: 12, Rating: 4.8, ConsultationFee: 40, HospitalID: hospitals[0].ID},
		{Name: "Dr. Milan Reddy", Specialization: "neurology", ExperienceYears: 9, Rating: 4.5, ConsultationFee: 45, HospitalID: hospitals[0].ID},
		{Name: "Dr. Ananya Gupta", Specialization: "pediatrics", ExperienceYears: 7, Rating: 4.7, ConsultationFee: 30, HospitalID: hospitals[1].ID},
		{Name: "Dr. Joseph", Specialization: "orthopedics", ExperienceYears: 15, Rating: 4.3, ConsultationFee: 35, HospitalID: hospitals[2].ID},
	}
	if err := DB.Create(&doctors).Error; err != nil {
		log.Printf("Warning: failed to seed doctors: %v", err)
	}
}
