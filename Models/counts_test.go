package Models

import (
	"testing"
	"time"

	"MindCare/Constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPatientsSumsBothTables(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Patient{Name: "A", PatientNumber: "P-1"}).Error)
	require.NoError(t, db.Create(&Patient{Name: "B", PatientNumber: "P-2"}).Error)
	require.NoError(t, db.Create(&PatientProfile{UserID: 1, Name: "C"}).Error)

	count, err := CountPatients(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCountAppointmentsOnDate(t *testing.T) {
	db := testDB(t)

	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rows := []Appointment{
		{Details: AppointmentDetails{Date: NewFlexTime(today.Add(9 * time.Hour))}},
		{Details: AppointmentDetails{Date: NewFlexTime(today.Add(15 * time.Hour))}},
		{Details: AppointmentDetails{Date: NewFlexTime(today.Add(30 * time.Hour))}},
		{Details: AppointmentDetails{Date: NewFlexTime(today.Add(-1 * time.Hour))}},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	count, err := CountAppointmentsOnDate(db, today.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCountTreatmentsByStatus(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Treatment{PatientName: "A", Status: Constants.TreatmentOngoing}).Error)
	require.NoError(t, db.Create(&Treatment{PatientName: "B", Status: Constants.TreatmentOngoing}).Error)
	require.NoError(t, db.Create(&Treatment{PatientName: "C", Status: Constants.TreatmentCompleted}).Error)

	count, err := CountTreatmentsByStatus(db, Constants.TreatmentOngoing)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCountPendingFeedbackIncludesBothSpellings(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Feedback{UserID: 1, Rating: 4, Status: Constants.FeedbackNew}).Error)
	require.NoError(t, db.Create(&Feedback{UserID: 2, Rating: 2, Status: Constants.FeedbackPending}).Error)
	require.NoError(t, db.Create(&Feedback{UserID: 3, Rating: 5, Status: Constants.FeedbackReviewed}).Error)

	count, err := CountPendingFeedback(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCountDoctors(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&DoctorProfile{UserID: 1, Name: "Dr. Rao"}).Error)
	require.NoError(t, db.Create(&DoctorProfile{UserID: 2, Name: "Dr. Sen"}).Error)

	count, err := CountDoctors(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
