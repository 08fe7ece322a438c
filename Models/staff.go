package Models

import "gorm.io/gorm"

// DoctorProfile is the doctor's own record, upserted by its owner and keyed
// by the authenticated user id. It doubles as the bookable roster.
type DoctorProfile struct {
	gorm.Model
	UserID        uint     `json:"user_id" gorm:"uniqueIndex"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Qualification string   `json:"qualification"`
	LastWriteAt   FlexTime `json:"last_write_at"`
}

type GeneralManagerProfile struct {
	gorm.Model
	UserID      uint     `json:"user_id" gorm:"uniqueIndex"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Department  string   `json:"department"`
	LastWriteAt FlexTime `json:"last_write_at"`
}

// Staff rows are created by the general manager for personnel who never log
// in themselves.
type Staff struct {
	gorm.Model
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	AddedAt    FlexTime `json:"added_at"`
}
