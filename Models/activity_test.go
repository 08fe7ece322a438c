package Models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeActivitiesSortsAndCaps(t *testing.T) {
	var older, newer []ActivityItem
	for i := 0; i < 8; i++ {
		older = append(older, ActivityItem{
			ID: fmt.Sprintf("old-%d", i),
			At: FlexTimeOf(fmt.Sprintf("2024-01-%02dT09:00:00Z", i+1)),
		})
	}
	for i := 0; i < 8; i++ {
		newer = append(newer, ActivityItem{
			ID: fmt.Sprintf("new-%d", i),
			At: FlexTimeOf(fmt.Sprintf("2024-02-%02dT09:00:00Z", i+1)),
		})
	}

	merged := MergeActivities(10, older, newer)
	require.Len(t, merged, 10)

	// All February items come before any January item.
	for i := 0; i < 8; i++ {
		assert.Contains(t, merged[i].ID, "new-")
	}
	for i := 0; i < len(merged)-1; i++ {
		assert.GreaterOrEqual(t, merged[i].At.Millis(), merged[i+1].At.Millis())
	}
}

func TestMergeActivitiesUnparseableSortsLast(t *testing.T) {
	items := []ActivityItem{
		{ID: "broken", At: FlexTimeOf("not a timestamp")},
		{ID: "good", At: FlexTimeOf("2024-01-10T09:00:00Z")},
	}
	merged := MergeActivities(10, items)
	require.Len(t, merged, 2)
	assert.Equal(t, "good", merged[0].ID)
	assert.Equal(t, "broken", merged[1].ID)
}

func TestRecentAppointmentActivityScopedToDoctor(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Appointment{
		DoctorID: 1, PatientName: "Asha",
		Details: AppointmentDetails{Date: FlexTimeOf("2024-01-10T10:00:00Z")},
	}).Error)
	require.NoError(t, db.Create(&Appointment{
		DoctorID: 2, PatientName: "Rahul",
		Details: AppointmentDetails{Date: FlexTimeOf("2024-01-11T10:00:00Z")},
	}).Error)

	items, err := RecentAppointmentActivity(db, 10, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Appointment with Asha", items[0].Text)
}

func TestRecentActivityFeedMergesSources(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&Appointment{
		PatientName: "Asha",
		Details:     AppointmentDetails{Date: FlexTimeOf("2024-01-12T10:00:00Z")},
	}).Error)
	require.NoError(t, db.Create(&Treatment{
		PatientName: "Rahul", Status: "ongoing", Date: FlexTimeOf("2024-01-11T10:00:00Z"),
	}).Error)
	require.NoError(t, db.Create(&Feedback{
		UserID: 1, Doctor: "Dr. Rao", Rating: 5, SubmittedAt: FlexTimeOf("2024-01-10T10:00:00Z"),
	}).Error)

	feed, err := RecentActivityFeed(db)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "Appointment with Asha", feed[0].Text)
	assert.Equal(t, "Treatment ongoing for Rahul", feed[1].Text)
	assert.Equal(t, "Feedback (5/5) for Dr. Rao", feed[2].Text)
}

func TestRecentActivityFeedCapped(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&Appointment{
			PatientName: fmt.Sprintf("Patient %d", i),
			Details:     AppointmentDetails{Date: FlexTimeOf(fmt.Sprintf("2024-01-%02dT10:00:00Z", i+1))},
		}).Error)
	}

	feed, err := RecentActivityFeed(db)
	require.NoError(t, err)
	assert.Len(t, feed, 10)
}
