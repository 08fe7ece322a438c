package Controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"MindCare/Models"

	"github.com/gin-gonic/gin"
)

// FetchPatients lists the chart table with optional in-handler substring
// filtering, the same client-side match the old list views did.
func FetchPatients(c *gin.Context) {
	var patients []Models.Patient
	if err := Models.DB.Model(&Models.Patient{}).Find(&patients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if filter == "" {
		c.JSON(http.StatusOK, patients)
		return
	}

	matched := make([]Models.Patient, 0, len(patients))
	for _, patient := range patients {
		hay := strings.ToLower(patient.Name + " " + patient.PatientNumber + " " + patient.Phone)
		if strings.Contains(hay, filter) {
			matched = append(matched, patient)
		}
	}
	c.JSON(http.StatusOK, matched)
}

func CreatePatient(c *gin.Context) {
	var input Models.Patient

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.RegisteredAt.IsEpochZero() {
		input.RegisteredAt = Models.NewFlexTime(time.Now())
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient created successfully", "id": input.ID})
}

func UpdatePatient(c *gin.Context) {
	var input struct {
		ID                 uint   `json:"id"`
		Name               string `json:"name"`
		PatientNumber      string `json:"patient_id"`
		Age                int    `json:"age"`
		Gender             string `json:"gender"`
		Phone              string `json:"phone"`
		Address            string `json:"address"`
		Allergies          string `json:"allergies"`
		CurrentMedications string `json:"current_medications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	var patient Models.Patient
	if err := Models.DB.Model(&Models.Patient{}).Where("id = ?", input.ID).Find(&patient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	patient.Name = input.Name
	patient.PatientNumber = input.PatientNumber
	patient.Age = input.Age
	patient.Gender = input.Gender
	patient.Phone = input.Phone
	patient.Address = input.Address
	patient.Allergies = input.Allergies
	patient.CurrentMedications = input.CurrentMedications

	if err := Models.DB.Save(&patient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient updated successfully"})
}

func DeletePatient(c *gin.Context) {
	var input struct {
		PatientID uint `json:"patient_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, err)
		return
	}

	if err := Models.DB.Delete(&Models.Patient{}, "id = ?", input.PatientID).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Patient Deleted Successfully",
	})
}

// ResolvePatient matches a typed name and/or patient number against both
// patient tables: exact number, exact name, same probes on the profile
// table, then a case-insensitive substring scan. 404 when nothing matches.
func ResolvePatient(c *gin.Context) {
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
	c.JSON(http.StatusOK, resolved)
}

// Registration draft for the unauthenticated flow. The draft rides in a
// cookie so the same browser can resume it after signing in; nothing is
// persisted server-side until the profile upsert.
const draftCookieName = "patient_registration_draft"

func SavePatientRegistrationDraft(c *gin.Context) {
	var input struct {
		Name               string `json:"name" binding:"required"`
		Age                int    `json:"age"`
		Gender             string `json:"gender"`
		Phone              string `json:"phone"`
		Address            string `json:"address"`
		Allergies          string `json:"allergies"`
		CurrentMedications string `json:"current_medications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}

	c.SetCookie(draftCookieName, string(payload), 3600*24*14, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"message": "Draft Saved"})
}

func GetPatientRegistrationDraft(c *gin.Context) {
	raw, err := c.Cookie(draftCookieName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft found"})
		return
	}

	var draft map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft found"})
		return
	}
	c.JSON(http.StatusOK, draft)
}
