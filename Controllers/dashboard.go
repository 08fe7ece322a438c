package Controllers

import (
	"log"
	"net/http"
	"sort"
	"time"

	"MindCare/Constants"
	"MindCare/Models"
	"MindCare/Utils/Memo"
	"MindCare/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	countersCacheKey = "dashboard_counters"
	countersCacheTTL = 5 * time.Minute
)

// DashboardCounters are the cards on the admin and manager dashboards.
type DashboardCounters struct {
	Patients          int64 `json:"patients"`
	AppointmentsToday int64 `json:"appointments_today"`
	OngoingTreatments int64 `json:"ongoing_treatments"`
	PendingFeedback   int64 `json:"pending_feedback"`
	Doctors           int64 `json:"doctors"`
}

func computeDashboardCounters() (DashboardCounters, error) {
	var counters DashboardCounters
	var err error

	if counters.Patients, err = Models.CountPatients(Models.DB); err != nil {
		return counters, err
	}
	if counters.AppointmentsToday, err = Models.CountAppointmentsOnDate(Models.DB, time.Now()); err != nil {
		return counters, err
	}
	if counters.OngoingTreatments, err = Models.CountTreatmentsByStatus(Models.DB, Constants.TreatmentOngoing); err != nil {
		return counters, err
	}
	if counters.PendingFeedback, err = Models.CountPendingFeedback(Models.DB); err != nil {
		return counters, err
	}
	if counters.Doctors, err = Models.CountDoctors(Models.DB); err != nil {
		return counters, err
	}
	return counters, nil
}

func getDashboardCounters() (DashboardCounters, error) {
	value, err := Memo.Shared.Get(countersCacheKey, countersCacheTTL, func() (interface{}, error) {
		return computeDashboardCounters()
	})
	if err != nil {
		return DashboardCounters{}, err
	}
	return value.(DashboardCounters), nil
}

// RefreshDashboardCounters recomputes the cached counters. The cron worker
// runs this every five minutes so dashboard loads rarely hit the count path.
func RefreshDashboardCounters() {
	counters, err := computeDashboardCounters()
	if err != nil {
		log.Println("dashboard counter refresh failed:", err)
		return
	}
	Memo.Shared.Put(countersCacheKey, counters, countersCacheTTL)
}

func AdminDashboard(c *gin.Context) {
	counters, err := getDashboardCounters()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	feed, err := Models.RecentActivityFeed(Models.DB)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counters": counters, "recent_activity": feed})
}

func ManagerDashboard(c *gin.Context) {
	counters, err := getDashboardCounters()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var staffCount int64
	if err := Models.DB.Model(&Models.Staff{}).Count(&staffCount).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	feed, err := Models.RecentActivityFeed(Models.DB)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counters": counters, "staff": staffCount, "recent_activity": feed})
}

// DoctorDashboard scopes everything to the authenticated doctor: their own
// schedule and the treatments they recorded.
func DoctorDashboard(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var appointmentsToday int64
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := Models.DB.Model(&Models.Appointment{}).
		Where("doctor_id = ? AND detail_date >= ? AND detail_date < ?", userID, start, start.Add(24*time.Hour)).
		Count(&appointmentsToday).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var ongoing int64
	if err := Models.DB.Model(&Models.Treatment{}).
		Where("created_by_uid = ? AND status = ?", userID, Constants.TreatmentOngoing).
		Count(&ongoing).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	appointmentItems, err := Models.RecentAppointmentActivity(Models.DB, Constants.ActivityFeedLimit, userID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	treatmentItems, err := Models.RecentTreatmentActivity(Models.DB, Constants.ActivityFeedLimit, userID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	feed := Models.MergeActivities(Constants.ActivityFeedLimit, appointmentItems, treatmentItems)

	c.JSON(http.StatusOK, gin.H{
		"appointments_today": appointmentsToday,
		"ongoing_treatments": ongoing,
		"recent_activity":    feed,
	})
}

// PatientDashboard shows the caller's upcoming appointments soonest-first and
// their own recent feedback.
func PatientDashboard(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	appointments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Appointment{}).Where("patient_uid = ?", userID)
	}, "detail_date", func(a *Models.Appointment) Models.FlexTime { return a.Details.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	upcoming := make([]Models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.EffectiveStatus() == Constants.AppointmentCancelled {
			continue
		}
		if appointment.Details.Date.Before(cutoff) {
			continue
		}
		upcoming = append(upcoming, appointment)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Details.Date.Millis() < upcoming[j].Details.Date.Millis()
	})

	feedback, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Feedback{}).Where("user_id = ?", userID).Limit(5)
	}, "submitted_at", func(f *Models.Feedback) Models.FlexTime { return f.SubmittedAt })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming_appointments": upcoming,
		"recent_feedback":       feedback,
	})
}
