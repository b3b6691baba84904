package models

// AvailabilityReport describes one date's slot availability.
type AvailabilityReport struct {
	Date               string            `json:"date"`
	AvailableSlots     []string          `json:"availableSlots"`     // slot times, ascending
	BookedAppointments map[string]string `json:"bookedAppointments"` // slot time -> occupant descriptor
	TotalSlots         int               `json:"totalSlots"`
	AvailableCount     int               `json:"availableCount"`
	BookedCount        int               `json:"bookedCount"`
}

// DayAvailability is one day's entry in a date-range availability report.
type DayAvailability struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	Summary        string   `json:"summary"`
}
