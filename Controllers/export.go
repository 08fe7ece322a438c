package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"MindCare/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExportTreatments writes the treatments between two dates to an xlsx sheet
// for the monthly report.
func ExportTreatments(c *gin.Context) {
	var input struct {
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := Models.FlexTimeOf(input.StartDate)
	end := Models.FlexTimeOf(input.EndDate)
	if start.IsEpochZero() || end.IsEpochZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	treatments, err := Models.FindOrderedBy(func() *gorm.DB {
		return Models.DB.Model(&Models.Treatment{}).
			Where("date >= ? AND date < ?", start.Time, end.Time.Add(24*time.Hour))
	}, "date", func(t *Models.Treatment) Models.FlexTime { return t.Date })
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load treatments"})
		return
	}

	xlsx := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Date", "Patient ID", "Patient Name", "Problem", "Duration", "Medications", "Status", "Doctor"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		xlsx.SetCellValue(sheet, cell, header)
	}

	for i, treatment := range treatments {
		row := i + 2
		xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", row), treatment.Date.Format("2006-01-02"))
		xlsx.SetCellValue(sheet, fmt.Sprintf("B%d", row), treatment.PatientNumber)
		xlsx.SetCellValue(sheet, fmt.Sprintf("C%d", row), treatment.PatientName)
		xlsx.SetCellValue(sheet, fmt.Sprintf("D%d", row), treatment.Problem)
		xlsx.SetCellValue(sheet, fmt.Sprintf("E%d", row), treatment.Duration)
		xlsx.SetCellValue(sheet, fmt.Sprintf("F%d", row), treatment.Medications)
		xlsx.SetCellValue(sheet, fmt.Sprintf("G%d", row), treatment.Status)
		xlsx.SetCellValue(sheet, fmt.Sprintf("H%d", row), treatment.CreatedByName)
	}

	filename := fmt.Sprintf("treatments_%s_%s.xlsx", input.StartDate, input.EndDate)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := xlsx.Write(c.Writer); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export"})
		return
	}
}
