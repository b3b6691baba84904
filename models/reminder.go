package models

// ReminderPayload is the task payload queued for an appointment reminder.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	FireAt      string `json:"fireAt"` // RFC3339 timestamp the reminder should fire at
}
