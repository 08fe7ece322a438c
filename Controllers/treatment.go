package Controllers

import (
	"log"
	"net/http"
	"time"

	"MindCare/Constants"
	"MindCare/Models"
	"MindCare/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTreatment(c *gin.Context) {
	var input struct {
		PatientNumber string `json:"patient_id"`
		PatientName   string `json:"patient_name" binding:"required"`
		Problem       string `json:"problem" binding:"required"`
		Duration      string `json:"duration"`
		PastHistory   string `json:"past_history"`
		Medications   string `json:"medications"`
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
	user, err := Models.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdByName := user.Username
	var doctor Models.DoctorProfile
	if err := Models.DB.Where("user_id = ?", userID).First(&doctor).Error; err == nil && doctor.Name != "" {
		createdByName = doctor.Name
	}

	treatment := Models.Treatment{
		PatientNumber: input.PatientNumber,
		PatientName:   input.PatientName,
		Problem:       input.Problem,
		Duration:      input.Duration,
		PastHistory:   input.PastHistory,
		Medications:   input.Medications,
		Status:        Constants.TreatmentOngoing,
		Date:          Models.NewFlexTime(time.Now()),
		CreatedByUID:  userID,
		CreatedByName: createdByName,
	}

	if err := Models.DB.Create(&treatment).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create treatment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment created successfully", "id": treatment.ID})
}

func FetchTreatments(c *gin.Context) {
	treatments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Treatment{})
	}, "date", func(t *Models.Treatment) Models.FlexTime { return t.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load treatments"})
		return
	}
	c.JSON(http.StatusOK, treatments)
}

// FetchMyTreatments lists the treatments the authenticated doctor recorded.
func FetchMyTreatments(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	treatments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Treatment{}).Where("created_by_uid = ?", userID)
	}, "date", func(t *Models.Treatment) Models.FlexTime { return t.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load treatments"})
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func FetchTreatmentsByPatient(c *gin.Context) {
	patientNumber := c.Query("patient_id")
	if patientNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id is required"})
		return
	}

	treatments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Treatment{}).Where("patient_number = ?", patientNumber)
	}, "date", func(t *Models.Treatment) Models.FlexTime { return t.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load treatments"})
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func UpdateTreatmentStatus(c *gin.Context) {
	var input struct {
		TreatmentID uint   `json:"treatment_id" binding:"required"`
		Status      string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Status {
	case Constants.TreatmentOngoing, Constants.TreatmentCompleted, Constants.TreatmentDiscontinued:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	var treatment Models.Treatment
	if err := Models.DB.First(&treatment, input.TreatmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Treatment not found"})
		return
	}

	treatment.Status = input.Status
	if err := Models.DB.Save(&treatment).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update treatment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment updated successfully"})
}

// ImportPatient resolves the typed name/number against both patient tables
// and returns the matched record together with its treatment history, so a
// doctor can pull an existing chart into a new consultation.
func ImportPatient(c *gin.Context) {
	var input struct {
		PatientNumber string `json:"patient_id"`
		Name          string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := Models.ResolvePatient(Models.DB, input.PatientNumber, input.Name)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up patient"})
		return
	}
	if resolved == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No matching patient found"})
		return
	}

	var history []Models.Treatment
	if resolved.PatientNumber != "" {
		history, err = Models.FindOrderedBy(func() *gorm.DB {
			return Models.DB.Model(&Models.Treatment{}).Where("patient_number = ?", resolved.PatientNumber)
		}, "date", func(t *Models.Treatment) Models.FlexTime { return t.Date })
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load treatment history"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"patient": resolved, "treatments": history})
}
