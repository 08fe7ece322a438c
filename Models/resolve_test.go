package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPatients(t *testing.T, db *gorm.DB) {
	t.Helper()
	patients := []Patient{
		{Name: "Asha Verma", PatientNumber: "P-1001", Phone: "111"},
		{Name: "Rahul Gupta", PatientNumber: "P-1002", Phone: "222"},
	}
	for i := range patients {
		require.NoError(t, db.Create(&patients[i]).Error)
	}
	profiles := []PatientProfile{
		{UserID: 10, Name: "Meera Iyer", PatientNumber: "P-2001", Phone: "333"},
		{UserID: 11, Name: "Rahul Nair", PatientNumber: "P-2002", Phone: "444"},
	}
	for i := range profiles {
		require.NoError(t, db.Create(&profiles[i]).Error)
	}
}

func TestResolveExactNumberInPatients(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "P-1002", "")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "patients", resolved.Source)
	assert.Equal(t, "Rahul Gupta", resolved.Name)
}

func TestResolveExactNameInPatients(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "", "Asha Verma")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "patients", resolved.Source)
	assert.Equal(t, "P-1001", resolved.PatientNumber)
}

func TestResolveFallsThroughToProfiles(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "P-2001", "")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "patient_profiles", resolved.Source)
	assert.Equal(t, "Meera Iyer", resolved.Name)

	resolved, err = ResolvePatient(db, "", "Rahul Nair")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "patient_profiles", resolved.Source)
}

func TestResolveChartTableWinsOverProfiles(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)
	require.NoError(t, db.Create(&PatientProfile{UserID: 12, Name: "Asha Verma", PatientNumber: "P-9999"}).Error)

	resolved, err := ResolvePatient(db, "", "Asha Verma")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "patients", resolved.Source)
	assert.Equal(t, "P-1001", resolved.PatientNumber)
}

func TestResolveSubstringOnlyAfterExactMisses(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	// "rahul" matches two rows by substring; no exact match exists, so the
	// scan runs and the chart table is probed first.
	resolved, err := ResolvePatient(db, "", "rahul")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "patients", resolved.Source)
	assert.Equal(t, "Rahul Gupta", resolved.Name)
}

func TestResolveSubstringNumberBeatsName(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "2002", "Asha")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "P-2002", resolved.PatientNumber)
}

func TestResolveCaseInsensitive(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "", "MEERA")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "Meera Iyer", resolved.Name)
}

func TestResolveNoMatch(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "X-404", "Nobody Here")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolveEmptyInput(t *testing.T) {
	db := testDB(t)
	seedPatients(t, db)

	resolved, err := ResolvePatient(db, "", "  ")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}
