package Models

import (
	"gorm.io/gorm"
)

// Patient is the staff-created chart. PatientProfile below is the parallel
// self-service record keyed by the owning user; lookups probe both.
type Patient struct {
	gorm.Model
	Name               string   `json:"name"`
	PatientNumber      string   `json:"patient_id"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	Allergies          string   `json:"allergies"`
	CurrentMedications string   `json:"current_medications"`
	RegisteredAt       FlexTime `json:"registered_at"`
}

type PatientProfile struct {
	gorm.Model
	UserID             uint     `json:"user_id" gorm:"uniqueIndex"`
	Name               string   `json:"name"`
	PatientNumber      string   `json:"patient_id"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	Allergies          string   `json:"allergies"`
	CurrentMedications string   `json:"current_medications"`
	LastWriteAt        FlexTime `json:"last_write_at"`
}
