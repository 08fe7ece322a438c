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

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SubmitFeedback(c *gin.Context) {
	var input struct {
		Doctor  string `json:"doctor"`
		Review  string `json:"review"`
		Message string `json:"message"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
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

	feedback := Models.Feedback{
		UserID:      userID,
		Doctor:      input.Doctor,
		Review:      input.Review,
		Message:     input.Message,
		Rating:      input.Rating,
		Status:      Constants.FeedbackNew,
		SubmittedAt: Models.NewFlexTime(time.Now()),
	}

	if err := Models.DB.Create(&feedback).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to submit feedback"})
		return
	}

	SSE.Broadcaster.Broadcast("feedback")

	go func() {
		fcms, err := Models.GetStaffFCMs()
		if err != nil {
			log.Println(err)
			return
		}
		if len(fcms) == 0 {
			return
		}
		target := input.Doctor
		if target == "" {
			target = "the hospital"
		}
		err = FirebaseMessaging.SendMessage(Models.NotificationRequest{
			Tokens: fcms,
			Title:  "New Feedback",
			Body:   fmt.Sprintf("New %d/5 feedback for %s", input.Rating, target),
		})
		if err != nil {
			log.Println(err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted successfully", "id": feedback.ID})
}

func FetchFeedback(c *gin.Context) {
	rows, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Feedback{})
	}, "submitted_at", func(f *Models.Feedback) Models.FlexTime { return f.SubmittedAt })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func FetchMyFeedback(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	rows, err := Models.FindOrderedByFiltered(func() *gorm.DB {
		return Models.DB.Model(&Models.Feedback{}).Where("user_id = ?", userID)
	}, func() *gorm.DB {
		return Models.DB.Model(&Models.Feedback{})
	}, "submitted_at", func(f *Models.Feedback) Models.FlexTime { return f.SubmittedAt },
		func(f *Models.Feedback) bool { return f.UserID == userID })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func UpdateFeedbackStatus(c *gin.Context) {
	var input struct {
		FeedbackID uint   `json:"feedback_id" binding:"required"`
		Status     string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Status {
	case Constants.FeedbackNew, Constants.FeedbackPending, Constants.FeedbackReviewed, Constants.FeedbackResolved:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	var feedback Models.Feedback
	if err := Models.DB.First(&feedback, input.FeedbackID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	feedback.Status = input.Status
	if err := Models.DB.Save(&feedback).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update feedback"})
		return
	}

	SSE.Broadcaster.Broadcast("feedback")
	c.JSON(http.StatusOK, gin.H{"message": "Feedback updated successfully"})
}
