package Routes

import (
	"MindCare/Constants"
	"MindCare/Controllers"
	"MindCare/Middleware"
	"MindCare/SSE"
	"MindCare/Whatsapp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/SaveFcmToken", Controllers.SaveFcmToken)
		public.GET("/GetDoctors", Controllers.GetDoctors)
		public.POST("/CheckAvailability", Controllers.CheckAvailability)
		public.POST("/SaveRegistrationDraft", Controllers.SavePatientRegistrationDraft)
		public.GET("/GetRegistrationDraft", Controllers.GetPatientRegistrationDraft)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/Logout", Controllers.Logout)
		authorized.POST("/DeleteUser", Controllers.DeleteUser)

		// Appointment-related routes
		authorized.POST("/BookAppointment", Controllers.BookAppointment)
		authorized.GET("/FetchMyAppointments", Controllers.FetchMyAppointments)
		authorized.POST("/CancelAppointment", Controllers.CancelAppointment)

		// Patient self-service
		authorized.POST("/UpsertMyPatientProfile", Controllers.UpsertMyPatientProfile)
		authorized.GET("/FetchMyPatientProfile", Controllers.FetchMyPatientProfile)
		authorized.POST("/SubmitFeedback", Controllers.SubmitFeedback)
		authorized.GET("/FetchMyFeedback", Controllers.FetchMyFeedback)
		authorized.GET("/PatientDashboard", Controllers.PatientDashboard)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)
	}

	// Doctor routes
	doctor := router.Group("/api/doctor")
	doctor.Use(Middleware.JwtAuthMiddleware())
	doctor.Use(Middleware.PermissionCheck(Constants.PermissionDoctor))
	{
		doctor.GET("/Dashboard", Controllers.DoctorDashboard)
		doctor.GET("/FetchAppointments", Controllers.FetchDoctorAppointments)
		doctor.POST("/CompleteAppointment", Controllers.CompleteAppointment)
		doctor.POST("/UpsertProfile", Controllers.UpsertMyDoctorProfile)
		doctor.GET("/FetchProfile", Controllers.FetchMyDoctorProfile)

		// Treatment-related routes
		doctor.POST("/CreateTreatment", Controllers.CreateTreatment)
		doctor.GET("/FetchMyTreatments", Controllers.FetchMyTreatments)
		doctor.GET("/FetchTreatmentsByPatient", Controllers.FetchTreatmentsByPatient)
		doctor.POST("/UpdateTreatmentStatus", Controllers.UpdateTreatmentStatus)
		doctor.POST("/ImportPatient", Controllers.ImportPatient)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(Middleware.JwtAuthMiddleware())
	admin.Use(Middleware.PermissionCheck(Constants.PermissionAdmin))
	{
		admin.GET("/Dashboard", Controllers.AdminDashboard)

		// Patient-related routes
		admin.GET("/FetchPatients", Controllers.FetchPatients)
		admin.POST("/CreatePatient", Controllers.CreatePatient)
		admin.POST("/UpdatePatient", Controllers.UpdatePatient)
		admin.POST("/DeletePatient", Controllers.DeletePatient)
		admin.POST("/ResolvePatient", Controllers.ResolvePatient)

		// Appointment-related routes
		admin.GET("/FetchAppointments", Controllers.FetchAppointments)
		admin.GET("/FetchAppointmentsByPatient", Controllers.FetchAppointmentsByPatient)

		// Treatment and feedback oversight
		admin.GET("/FetchTreatments", Controllers.FetchTreatments)
		admin.GET("/FetchFeedback", Controllers.FetchFeedback)
		admin.POST("/UpdateFeedbackStatus", Controllers.UpdateFeedbackStatus)

		// WhatsApp-related routes
		admin.GET("/CheckWhatsAppLogin", Whatsapp.CheckLogin)
		admin.GET("/GetWhatsAppQRCode", Whatsapp.GetQRCode)

		// Export-related routes
		admin.POST("/ExportTreatments", Controllers.ExportTreatments)
	}

	// General manager routes
	manager := router.Group("/api/manager")
	manager.Use(Middleware.JwtAuthMiddleware())
	manager.Use(Middleware.PermissionCheck(Constants.PermissionGeneralManager))
	{
		manager.GET("/Dashboard", Controllers.ManagerDashboard)
		manager.POST("/UpsertProfile", Controllers.UpsertMyManagerProfile)
		manager.GET("/FetchProfile", Controllers.FetchMyManagerProfile)

		// Staff-related routes
		manager.GET("/FetchStaff", Controllers.FetchStaff)
		manager.POST("/AddStaff", Controllers.AddStaff)
		manager.POST("/UpdateStaff", Controllers.UpdateStaff)
		manager.POST("/DeleteStaff", Controllers.DeleteStaff)
	}

	// Static file serving
	router.Static("/Web", "./Static")
}
