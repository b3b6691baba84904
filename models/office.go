package models

// OfficeConfig is the immutable per-schedule configuration.
type OfficeConfig struct {
	StartHour   int  `json:"startHour"`   // first bookable hour, e.g. 8 for 8 AM
	EndHour     int  `json:"endHour"`     // exclusive, e.g. 17 means last slot starts at 16:00
	SlotMinutes int  `json:"slotMinutes"` // grid granularity, e.g. 60 for hourly slots
	DaysAhead   int  `json:"daysAhead"`   // calendar days pre-populated from the reference date
	Bookable    bool `json:"bookable"`    // false for generated, read-only calendars
}

// SlotsPerDay returns the number of grid slots in one day's office hours.
func (c OfficeConfig) SlotsPerDay() int {
	if c.SlotMinutes <= 0 {
		return 0
	}
	return (c.EndHour - c.StartHour) * 60 / c.SlotMinutes
}
