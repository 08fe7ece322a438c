package Models

import (
	"testing"

	"MindCare/Constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoster(t *testing.T, db *gorm.DB) {
	t.Helper()
	doctors := []DoctorProfile{
		{UserID: 1, Name: "Dr. Rao", Specialty: "Cardiology"},
		{UserID: 2, Name: "Dr. Sen", Specialty: "Neurology"},
	}
	for i := range doctors {
		require.NoError(t, db.Create(&doctors[i]).Error)
	}
}

func doctorNames(doctors []DoctorProfile) []string {
	names := make([]string, 0, len(doctors))
	for _, doctor := range doctors {
		names = append(names, doctor.Name)
	}
	return names
}

func TestAvailableDoctorsExcludesBookedSlot(t *testing.T) {
	db := testDB(t)
	seedRoster(t, db)

	require.NoError(t, db.Create(&Appointment{
		DoctorID: 1, Doctor: "Dr. Rao",
		Details: AppointmentDetails{DateString: "2024-01-10", Time: "10:00 AM"},
		Status:  Constants.AppointmentScheduled,
	}).Error)

	free, err := AvailableDoctors(db, "2024-01-10", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Sen"}, doctorNames(free))
}

func TestAvailableDoctorsOtherSlotUnaffected(t *testing.T) {
	db := testDB(t)
	seedRoster(t, db)

	require.NoError(t, db.Create(&Appointment{
		DoctorID: 1, Doctor: "Dr. Rao",
		Details: AppointmentDetails{DateString: "2024-01-10", Time: "10:00 AM"},
	}).Error)

	free, err := AvailableDoctors(db, "2024-01-10", "11:00 AM")
	require.NoError(t, err)
	assert.Len(t, free, 2)

	free, err = AvailableDoctors(db, "2024-01-11", "10:00 AM")
	require.NoError(t, err)
	assert.Len(t, free, 2)
}

func TestAvailableDoctorsCancelledFreesSlot(t *testing.T) {
	db := testDB(t)
	seedRoster(t, db)

	appointment := Appointment{
		DoctorID: 1, Doctor: "Dr. Rao",
		Details: AppointmentDetails{DateString: "2024-01-10", Time: "10:00 AM"},
		Status:  Constants.AppointmentScheduled,
	}
	require.NoError(t, db.Create(&appointment).Error)

	free, err := AvailableDoctors(db, "2024-01-10", "10:00 AM")
	require.NoError(t, err)
	assert.Len(t, free, 1)

	appointment.Status = Constants.AppointmentCancelled
	require.NoError(t, db.Save(&appointment).Error)

	free, err = AvailableDoctors(db, "2024-01-10", "10:00 AM")
	require.NoError(t, err)
	assert.Len(t, free, 2)
}

func TestAvailableDoctorsEmptyStatusCountsAsBooked(t *testing.T) {
	db := testDB(t)
	seedRoster(t, db)

	// Legacy rows carry no status at all; they still hold the slot.
	require.NoError(t, db.Create(&Appointment{
		DoctorID: 2, Doctor: "Dr. Sen",
		Details: AppointmentDetails{DateString: "2024-01-10", Time: "09:00 AM"},
	}).Error)

	free, err := AvailableDoctors(db, "2024-01-10", "09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Rao"}, doctorNames(free))
}

func TestEffectiveStatusDefaults(t *testing.T) {
	assert.Equal(t, Constants.AppointmentScheduled, Appointment{}.EffectiveStatus())
	assert.Equal(t, Constants.AppointmentCancelled, Appointment{Status: Constants.AppointmentCancelled}.EffectiveStatus())

	assert.Equal(t, Constants.FeedbackNew, Feedback{}.EffectiveStatus())
	assert.Equal(t, Constants.FeedbackReviewed, Feedback{Status: Constants.FeedbackReviewed}.EffectiveStatus())
}
