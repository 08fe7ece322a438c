package Models

import "gorm.io/gorm"

type Treatment struct {
	gorm.Model
	PatientNumber string   `json:"patient_id"`
	PatientName   string   `json:"patient_name"`
	Problem       string   `json:"problem"`
	Duration      string   `json:"duration"`
	PastHistory   string   `json:"past_history"`
	Medications   string   `json:"medications"`
	Status        string   `json:"status"`
	Date          FlexTime `json:"date"`
	CreatedByUID  uint     `json:"created_by_uid"`
	CreatedByName string   `json:"created_by_name"`
}
