package models

// BookingRequest is the payload for booking an appointment.
type BookingRequest struct {
	Date            string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime       string `json:"startTime" binding:"required"` // "HH:MM"
	EndTime         string `json:"endTime" binding:"required"`   // "HH:MM"
	PatientName     string `json:"patientName"` // validated by the engine so the error kind is preserved
	AppointmentType string `json:"appointmentType,omitempty"` // defaults to "consultation"
}

// BookingResult is the confirmation returned for a committed booking.
type BookingResult struct {
	BookingID       string   `json:"bookingId"`
	PatientName     string   `json:"patientName"`
	AppointmentType string   `json:"appointmentType"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationSlots   int      `json:"durationSlots"`
	BookedSlots     []string `json:"bookedSlots"`
}
