package main

import (
	"MindCare/Controllers"
	"MindCare/CronJobs"
	"MindCare/FirebaseMessaging"
	"MindCare/Models"
	"MindCare/Routes"
	"MindCare/Whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	FirebaseMessaging.Setup()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://mindcare.ddns.net", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	reminderService := CronJobs.NewAppointmentReminder(Models.DB)
	scheduler := reminderService.StartWorkers()
	_ = scheduler
	Controllers.RefreshDashboardCounters()

	go Whatsapp.Listen()

	router.Run(":3005")
}
