package Models

import (
	"MindCare/Constants"

	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	UserID      uint     `json:"uid"`
	Doctor      string   `json:"doctor"`
	Review      string   `json:"review"`
	Message     string   `json:"message"`
	Rating      int      `json:"rating"`
	Status      string   `json:"status"`
	SubmittedAt FlexTime `json:"created_at"`
}

// EffectiveStatus: rows written before the status field existed read as new.
func (f Feedback) EffectiveStatus() string {
	if f.Status == "" {
		return Constants.FeedbackNew
	}
	return f.Status
}
