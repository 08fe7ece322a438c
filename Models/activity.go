package Models

import (
	"fmt"

	"MindCare/Constants"

	"gorm.io/gorm"
)

// ActivityItem is the common shape appointments, treatments and feedback are
// mapped into for the dashboard feeds.
type ActivityItem struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	At   FlexTime `json:"timestamp"`
}

// MergeActivities concatenates the per-source slices, sorts newest-first and
// truncates to limit. Each source is independently capped before the merge,
// so a busy source can push a genuinely newer event of its own past its cap —
// an accepted approximation, not a correctness guarantee.
func MergeActivities(limit int, sources ...[]ActivityItem) []ActivityItem {
	merged := make([]ActivityItem, 0)
	for _, source := range sources {
		merged = append(merged, source...)
	}
	SortByInstantDesc(merged, func(item *ActivityItem) FlexTime { return item.At })
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// RecentAppointmentActivity maps the latest appointments to feed items. A
// zero doctorID means all doctors.
func RecentAppointmentActivity(db *gorm.DB, fetchCap int, doctorID uint) ([]ActivityItem, error) {
	query := func() *gorm.DB {
		tx := db.Model(&Appointment{}).Limit(fetchCap)
		if doctorID != 0 {
			tx = tx.Where("doctor_id = ?", doctorID)
		}
		return tx
	}
	appointments, err := FindOrderedBy(query, "detail_date", func(a *Appointment) FlexTime { return a.Details.Date })
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(appointments))
	for _, appointment := range appointments {
		patient := appointment.PatientName
		if patient == "" {
			patient = appointment.Details.PatientNumber
		}
		if patient == "" {
			patient = "Patient"
		}
		items = append(items, ActivityItem{
			ID:   fmt.Sprintf("appt-%d", appointment.ID),
			Text: fmt.Sprintf("Appointment with %s", patient),
			At:   appointment.Details.Date,
		})
	}
	return items, nil
}

func RecentTreatmentActivity(db *gorm.DB, fetchCap int, createdByUID uint) ([]ActivityItem, error) {
	query := func() *gorm.DB {
		tx := db.Model(&Treatment{}).Limit(fetchCap)
		if createdByUID != 0 {
			tx = tx.Where("created_by_uid = ?", createdByUID)
		}
		return tx
	}
	treatments, err := FindOrderedBy(query, "date", func(t *Treatment) FlexTime { return t.Date })
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(treatments))
	for _, treatment := range treatments {
		status := treatment.Status
		if status == "" {
			status = "updated"
		}
		patient := treatment.PatientName
		if patient == "" {
			patient = treatment.PatientNumber
		}
		if patient == "" {
			patient = "Patient"
		}
		items = append(items, ActivityItem{
			ID:   fmt.Sprintf("trt-%d", treatment.ID),
			Text: fmt.Sprintf("Treatment %s for %s", status, patient),
			At:   treatment.Date,
		})
	}
	return items, nil
}

func RecentFeedbackActivity(db *gorm.DB, fetchCap int) ([]ActivityItem, error) {
	query := func() *gorm.DB {
		return db.Model(&Feedback{}).Limit(fetchCap)
	}
	rows, err := FindOrderedBy(query, "submitted_at", func(f *Feedback) FlexTime { return f.SubmittedAt })
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(rows))
	for _, feedback := range rows {
		doctor := feedback.Doctor
		if doctor == "" {
			doctor = "the hospital"
		}
		items = append(items, ActivityItem{
			ID:   fmt.Sprintf("fb-%d", feedback.ID),
			Text: fmt.Sprintf("Feedback (%d/5) for %s", feedback.Rating, doctor),
			At:   feedback.SubmittedAt,
		})
	}
	return items, nil
}

// RecentActivityFeed is the full three-source merge shown on the admin and
// manager dashboards.
func RecentActivityFeed(db *gorm.DB) ([]ActivityItem, error) {
	appointments, err := RecentAppointmentActivity(db, Constants.ActivityFeedLimit, 0)
	if err != nil {
		return nil, err
	}
	treatments, err := RecentTreatmentActivity(db, Constants.ActivityFeedLimit, 0)
	if err != nil {
		return nil, err
	}
	feedback, err := RecentFeedbackActivity(db, 5)
	if err != nil {
		return nil, err
	}
	return MergeActivities(Constants.ActivityFeedLimit, appointments, treatments, feedback), nil
}
