package Controllers

import (
	"log"
	"net/http"

	"MindCare/Models"
	"MindCare/Utils/Token"

	"github.com/gin-gonic/gin"
)

// Profile upserts bind every field as a pointer so only the keys the form
// actually submitted reach the merge write; absent fields keep their stored
// values.

func putField(fields map[string]interface{}, column string, value interface{}) {
	switch v := value.(type) {
	case *string:
		if v != nil {
			fields[column] = *v
		}
	case *int:
		if v != nil {
			fields[column] = *v
		}
	}
}

func UpsertMyPatientProfile(c *gin.Context) {
	var input struct {
		Name               *string `json:"name"`
		PatientNumber      *string `json:"patient_id"`
		Age                *int    `json:"age"`
		Gender             *string `json:"gender"`
		Phone              *string `json:"phone"`
		Address            *string `json:"address"`
		Allergies          *string `json:"allergies"`
		CurrentMedications *string `json:"current_medications"`
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

	fields := map[string]interface{}{}
	putField(fields, "name", input.Name)
	putField(fields, "patient_number", input.PatientNumber)
	putField(fields, "age", input.Age)
	putField(fields, "gender", input.Gender)
	putField(fields, "phone", input.Phone)
	putField(fields, "address", input.Address)
	putField(fields, "allergies", input.Allergies)
	putField(fields, "current_medications", input.CurrentMedications)

	profile, err := Models.UpsertPatientProfile(Models.DB, userID, fields)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func FetchMyPatientProfile(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var profile Models.PatientProfile
	if err := Models.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpsertMyDoctorProfile(c *gin.Context) {
	var input struct {
		Name          *string `json:"name"`
		Specialty     *string `json:"specialty"`
		Phone         *string `json:"phone"`
		Email         *string `json:"email"`
		Qualification *string `json:"qualification"`
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

	fields := map[string]interface{}{}
	putField(fields, "name", input.Name)
	putField(fields, "specialty", input.Specialty)
	putField(fields, "phone", input.Phone)
	putField(fields, "email", input.Email)
	putField(fields, "qualification", input.Qualification)

	profile, err := Models.UpsertDoctorProfile(Models.DB, userID, fields)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func FetchMyDoctorProfile(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var profile Models.DoctorProfile
	if err := Models.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpsertMyManagerProfile(c *gin.Context) {
	var input struct {
		Name       *string `json:"name"`
		Phone      *string `json:"phone"`
		Email      *string `json:"email"`
		Department *string `json:"department"`
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

	fields := map[string]interface{}{}
	putField(fields, "name", input.Name)
	putField(fields, "phone", input.Phone)
	putField(fields, "email", input.Email)
	putField(fields, "department", input.Department)

	profile, err := Models.UpsertGeneralManagerProfile(Models.DB, userID, fields)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func FetchMyManagerProfile(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var profile Models.GeneralManagerProfile
	if err := Models.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
