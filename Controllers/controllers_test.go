package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MindCare/Models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level Models.DB at an isolated in-memory
// database for the duration of the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	Models.Migrate(db)

	previous := Models.DB
	Models.DB = db
	t.Cleanup(func() { Models.DB = previous })
	return db
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	router := gin.New()
	router.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCheckAvailabilityExcludesBookedDoctor(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Models.DoctorProfile{UserID: 1, Name: "Dr. Rao"}).Error)
	require.NoError(t, db.Create(&Models.DoctorProfile{UserID: 2, Name: "Dr. Sen"}).Error)
	require.NoError(t, db.Create(&Models.Appointment{
		DoctorID: 1, Doctor: "Dr. Rao",
		Details: Models.AppointmentDetails{DateString: "2024-01-10", Time: "10:00 AM"},
		Status:  "scheduled",
	}).Error)

	recorder := postJSON(t, CheckAvailability, "/CheckAvailability", gin.H{
		"date": "2024-01-10",
		"time": "10:00 AM",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Doctors []Models.DoctorProfile `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Doctors, 1)
	assert.Equal(t, "Dr. Sen", response.Doctors[0].Name)
}

func TestCheckAvailabilityRequiresDateAndTime(t *testing.T) {
	setupTestDB(t)

	recorder := postJSON(t, CheckAvailability, "/CheckAvailability", gin.H{"date": "2024-01-10"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestResolvePatientEndpoint(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Models.Patient{Name: "Asha Verma", PatientNumber: "P-1001"}).Error)

	recorder := postJSON(t, ResolvePatient, "/ResolvePatient", gin.H{"name": "asha"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resolved Models.ResolvedPatient
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resolved))
	assert.Equal(t, "patients", resolved.Source)
	assert.Equal(t, "P-1001", resolved.PatientNumber)
}

func TestResolvePatientEndpointNotFound(t *testing.T) {
	setupTestDB(t)

	recorder := postJSON(t, ResolvePatient, "/ResolvePatient", gin.H{"name": "nobody"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateTreatmentStatusRejectsUnknown(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Models.Treatment{PatientName: "Asha", Status: "ongoing"}).Error)

	recorder := postJSON(t, UpdateTreatmentStatus, "/UpdateTreatmentStatus", gin.H{
		"treatment_id": 1,
		"status":       "vanished",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postJSON(t, UpdateTreatmentStatus, "/UpdateTreatmentStatus", gin.H{
		"treatment_id": 1,
		"status":       "completed",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var treatment Models.Treatment
	require.NoError(t, db.First(&treatment, 1).Error)
	assert.Equal(t, "completed", treatment.Status)
}
