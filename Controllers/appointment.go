package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"MindCare/Constants"
	"MindCare/FirebaseMessaging"
	"MindCare/Models"
	"MindCare/SSE"
	"MindCare/Utils/Token"
	"MindCare/Whatsapp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CheckAvailability returns the doctors still free at the requested slot.
func CheckAvailability(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctors, err := Models.AvailableDoctors(Models.DB, input.Date, input.Time)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       input.Date,
		"time":       input.Time,
		"time_slots": Constants.TimeSlots,
		"doctors":    doctors,
	})
}

func BookAppointment(c *gin.Context) {
	var input struct {
		PatientName   string `json:"patient_name" binding:"required"`
		PatientNumber string `json:"patient_id"`
		Phone         string `json:"phone"`
		DoctorID      uint   `json:"doctor_id" binding:"required"`
		Date          string `json:"date" binding:"required"`
		Time          string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var doctor Models.DoctorProfile
	if err := Models.DB.Where("user_id = ?", input.DoctorID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor not found"})
		return
	}

	// Re-check the slot inside the write path. Still advisory: nothing locks
	// between this read and the create below.
	free, err := Models.AvailableDoctors(Models.DB, input.Date, input.Time)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}
	available := false
	for _, candidate := range free {
		if candidate.UserID == doctor.UserID {
			available = true
			break
		}
	}
	if !available {
		c.JSON(http.StatusConflict, gin.H{"error": "Doctor is no longer available at this time"})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	appointment := Models.Appointment{
		PatientUID:  userID,
		PatientName: input.PatientName,
		DoctorID:    doctor.UserID,
		Doctor:      doctor.Name,
		Details: Models.AppointmentDetails{
			Date:          Models.FlexTimeOf(input.Date),
			DateString:    input.Date,
			Time:          input.Time,
			PatientNumber: input.PatientNumber,
		},
		Status:   Constants.AppointmentScheduled,
		BookedAt: Models.NewFlexTime(time.Now()),
	}

	if err := tx.Create(&appointment).Error; err != nil {
		tx.Rollback()
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to book appointment"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	SSE.Broadcaster.Broadcast("appointments")

	go func() {
		fcms, err := Models.GetStaffFCMs()
		if err != nil {
			log.Println(err)
			return
		}
		if len(fcms) == 0 {
			return
		}
		err = FirebaseMessaging.SendMessage(Models.NotificationRequest{
			Tokens: fcms,
			Title:  "New Appointment",
			Body:   fmt.Sprintf("%s booked Dr. %s on %s at %s", input.PatientName, doctor.Name, input.Date, input.Time),
		})
		if err != nil {
			log.Println(err)
		}
	}()

	if input.Phone != "" {
		go func() {
			message := fmt.Sprintf(
				"Dear %s, your appointment with Dr. %s is confirmed for %s at %s. MindCare Hospital.",
				input.PatientName, doctor.Name, input.Date, input.Time)
			if err := Whatsapp.SendMessage(input.Phone, message); err != nil {
				log.Println(err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment booked successfully", "id": appointment.ID})
}

// FetchMyAppointments lists the caller's appointments newest-first. Ordering
// falls back to an in-memory sort when the store can't order on the date
// column.
func FetchMyAppointments(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func FetchAppointments(c *gin.Context) {
	appointments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Appointment{})
	}, "detail_date", func(a *Models.Appointment) Models.FlexTime { return a.Details.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// FetchDoctorAppointments lists the authenticated doctor's own schedule.
func FetchDoctorAppointments(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	appointments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Appointment{}).Where("doctor_id = ?", userID)
	}, "detail_date", func(a *Models.Appointment) Models.FlexTime { return a.Details.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// FetchAppointmentsByPatient matches on the embedded patient number. When
// the store can't filter on the column the whole table is scanned and
// filtered in the handler.
func FetchAppointmentsByPatient(c *gin.Context) {
	patientNumber := c.Query("patient_id")
	if patientNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id is required"})
		return
	}

	appointments, err := Models.FindOrderedByFiltered(func() *gorm.DB {
		return Models.DB.Model(&Models.Appointment{}).Where("detail_patient_number = ?", patientNumber)
	}, func() *gorm.DB {
		return Models.DB.Model(&Models.Appointment{})
	}, "detail_date", func(a *Models.Appointment) Models.FlexTime { return a.Details.Date },
		func(a *Models.Appointment) bool { return a.Details.PatientNumber == patientNumber })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func setAppointmentStatus(c *gin.Context, status string) {
	var input struct {
		AppointmentID uint `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment Models.Appointment
	if err := Models.DB.First(&appointment, input.AppointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	appointment.Status = status
	if err := Models.DB.Save(&appointment).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update appointment"})
		return
	}

	SSE.Broadcaster.Broadcast("appointments")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment " + status})
}

// CancelAppointment frees the doctor's slot; cancelled rows no longer count
// against availability.
func CancelAppointment(c *gin.Context) {
	setAppointmentStatus(c, Constants.AppointmentCancelled)
}

func CompleteAppointment(c *gin.Context) {
	setAppointmentStatus(c, Constants.AppointmentCompleted)
}
