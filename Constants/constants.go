package Constants

// Base URL of the WhatsApp gateway sidecar used for confirmations and
// reminders.
const WhatsappGoService = "http://localhost:3000"

// Permission levels carried in User.Permission.
const (
	PermissionPatient        = 1
	PermissionDoctor         = 2
	PermissionAdmin          = 3
	PermissionGeneralManager = 4
)

// Appointment statuses. Free-text in the database, these are the values the
// application writes.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Treatment statuses.
const (
	TreatmentOngoing      = "ongoing"
	TreatmentCompleted    = "completed"
	TreatmentDiscontinued = "discontinued"
)

// Feedback statuses. Fresh rows are written as "new"; some older rows carry
// "pending" for the same unreviewed state, so counters treat both as pending.
const (
	FeedbackNew      = "new"
	FeedbackPending  = "pending"
	FeedbackReviewed = "reviewed"
	FeedbackResolved = "resolved"
)

// Bookable slots offered to patients.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// ActivityFeedLimit caps the merged recent-activity feed on every dashboard.
const ActivityFeedLimit = 10
