package Controllers

import (
	"log"
	"net/http"
	"time"

	"MindCare/Models"

	"github.com/gin-gonic/gin"
)

// GetDoctors returns the bookable roster. Public, the booking form shows it
// before login.
func GetDoctors(c *gin.Context) {
	var doctors []Models.DoctorProfile
	if err := Models.DB.Model(&Models.DoctorProfile{}).Find(&doctors).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func FetchStaff(c *gin.Context) {
	var staff []Models.Staff
	if err := Models.DB.Model(&Models.Staff{}).Find(&staff).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

func AddStaff(c *gin.Context) {
	var input struct {
		Name       string `json:"name" binding:"required"`
		Role       string `json:"role" binding:"required"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := Models.Staff{
		Name:       input.Name,
		Role:       input.Role,
		Phone:      input.Phone,
		Email:      input.Email,
		Department: input.Department,
		AddedAt:    Models.NewFlexTime(time.Now()),
	}
	if err := Models.DB.Create(&member).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member added successfully", "id": member.ID})
}

func UpdateStaff(c *gin.Context) {
	var input struct {
		ID         uint   `json:"id" binding:"required"`
		Name       string `json:"name"`
		Role       string `json:"role"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		Department string `json:"department"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member Models.Staff
	if err := Models.DB.First(&member, input.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	member.Name = input.Name
	member.Role = input.Role
	member.Phone = input.Phone
	member.Email = input.Email
	member.Department = input.Department

	if err := Models.DB.Save(&member).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member updated successfully"})
}

func DeleteStaff(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Delete(&Models.Staff{}, "id = ?", input.ID).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
