package Models

import (
	"MindCare/Constants"

	"gorm.io/gorm"
)

// AppointmentDetails keeps the legacy nested document shape: the canonical
// instant plus the raw date/time strings the booking form submitted. The
// availability check matches on the exact strings, not the instant.
type AppointmentDetails struct {
	Date          FlexTime `json:"date"`
	DateString    string   `json:"date_string"`
	Time          string   `json:"time"`
	PatientNumber string   `json:"patient_id"`
}

type Appointment struct {
	gorm.Model
	PatientUID   uint               `json:"patient_uid"`
	PatientName  string             `json:"patient_name"`
	DoctorID     uint               `json:"doctor_id"`
	Doctor       string             `json:"doctor"`
	Details      AppointmentDetails `json:"appointment_details" gorm:"embedded;embeddedPrefix:detail_"`
	Status       string             `json:"status"`
	BookedAt     FlexTime           `json:"booked_at"`
	ReminderSent bool               `json:"reminder_sent"`
}

// EffectiveStatus treats the empty free-text status as scheduled, the way
// every view did.
func (a Appointment) EffectiveStatus() string {
	if a.Status == "" {
		return Constants.AppointmentScheduled
	}
	return a.Status
}

// AvailableDoctors returns the roster minus every doctor holding a
// non-cancelled appointment at the exact date-string and time-slot pair.
// Purely advisory: nothing locks the slot between this check and a booking
// write, so two concurrent bookers can both see the same doctor as free.
func AvailableDoctors(db *gorm.DB, dateString, timeSlot string) ([]DoctorProfile, error) {
	var booked []Appointment
	if err := db.Model(&Appointment{}).
		Where("detail_date_string = ? AND detail_time = ?", dateString, timeSlot).
		Find(&booked).Error; err != nil {
		return nil, err
	}

	taken := make(map[uint]struct{})
	for _, appointment := range booked {
		if appointment.EffectiveStatus() == Constants.AppointmentCancelled {
			continue
		}
		if appointment.DoctorID != 0 {
			taken[appointment.DoctorID] = struct{}{}
		}
	}

	var roster []DoctorProfile
	if err := db.Model(&DoctorProfile{}).Find(&roster).Error; err != nil {
		return nil, err
	}

	available := make([]DoctorProfile, 0, len(roster))
	for _, doctor := range roster {
		if _, ok := taken[doctor.UserID]; !ok {
			available = append(available, doctor)
		}
	}
	return available, nil
}
