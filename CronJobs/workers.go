package CronJobs

import (
	"fmt"
	"log"
	"time"

	"MindCare/Constants"
	"MindCare/Controllers"
	"MindCare/Models"
	"MindCare/Whatsapp"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// AppointmentReminder sends WhatsApp reminders ahead of upcoming
// appointments and keeps the dashboard counter cache warm.
type AppointmentReminder struct {
	DB *gorm.DB
}

func NewAppointmentReminder(db *gorm.DB) *AppointmentReminder {
	return &AppointmentReminder{
		DB: db,
	}
}

// StartWorkers schedules the reminder sweep and the counter refresh.
func (ar *AppointmentReminder) StartWorkers() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(15).Minutes().Do(func() {
		if err := ar.SendAppointmentReminders(); err != nil {
			log.Printf("Error sending appointment reminders: %v", err)
		}
	})

	scheduler.Every(5).Minutes().Do(func() {
		Controllers.RefreshDashboardCounters()
	})

	scheduler.StartAsync()
	log.Println("Background workers started")

	return scheduler
}

// SendAppointmentReminders messages every patient whose appointment starts
// within the next three hours. Each appointment is reminded once.
func (ar *AppointmentReminder) SendAppointmentReminders() error {
	now := time.Now()
	windowEnd := now.Add(3 * time.Hour)

	var appointments []Models.Appointment
	if err := ar.DB.Model(&Models.Appointment{}).
		Where("reminder_sent = ?", false).
		Find(&appointments).Error; err != nil {
		return fmt.Errorf("failed to query appointments: %w", err)
	}

	for _, appointment := range appointments {
		if appointment.EffectiveStatus() == Constants.AppointmentCancelled {
			continue
		}

		startsAt, err := parseSlot(appointment.Details.DateString, appointment.Details.Time)
		if err != nil {
			continue
		}
		if startsAt.Before(now) || startsAt.After(windowEnd) {
			continue
		}

		var profile Models.PatientProfile
		if err := ar.DB.Where("user_id = ?", appointment.PatientUID).First(&profile).Error; err != nil {
			continue
		}
		if profile.Phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Reminder: You have an appointment with Dr. %s today at %s. "+
				"Please arrive 10 minutes early. If you need to reschedule, please contact us.",
			appointment.Doctor,
			startsAt.Format("3:04 PM"),
		)

		if err := Whatsapp.SendMessage(profile.Phone, message); err != nil {
			log.Printf("Failed to send reminder to %s: %v", appointment.PatientName, err)
			continue
		}

		if err := ar.DB.Model(&Models.Appointment{}).
			Where("id = ?", appointment.ID).
			Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder sent for appointment %d: %v", appointment.ID, err)
		}
	}

	return nil
}

func parseSlot(dateString, timeSlot string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 03:04 PM", dateString+" "+timeSlot, time.Local)
}
