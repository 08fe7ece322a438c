package Models

import (
	"time"

	"MindCare/Constants"

	"gorm.io/gorm"
)

// Aggregate counters behind the dashboard cards. All of these are DB-side
// counts; no rows are transferred.

// CountPatients sums the chart table and the self-service profile table, the
// same double count the legacy dashboard showed.
func CountPatients(db *gorm.DB) (int64, error) {
	var charts int64
	if err := db.Model(&Patient{}).Count(&charts).Error; err != nil {
		return 0, err
	}
	var profiles int64
	if err := db.Model(&PatientProfile{}).Count(&profiles).Error; err != nil {
		return 0, err
	}
	return charts + profiles, nil
}

func CountAppointmentsOnDate(db *gorm.DB, date time.Time) (int64, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var count int64
	err := db.Model(&Appointment{}).
		Where("detail_date >= ? AND detail_date < ?", start, end).
		Count(&count).Error
	return count, err
}

func CountTreatmentsByStatus(db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.Model(&Treatment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountPendingFeedback counts unreviewed feedback. Fresh rows are written
// with status "new" while older rows say "pending" for the same state, so
// both count.
func CountPendingFeedback(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Feedback{}).
		Where("status IN ?", []string{Constants.FeedbackNew, Constants.FeedbackPending}).
		Count(&count).Error
	return count, err
}

func CountDoctors(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&DoctorProfile{}).Count(&count).Error
	return count, err
}
