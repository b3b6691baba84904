package models

import "fmt"

// SlotState is the state of one time slot on one date. The zero value is an
// available slot; a booked slot carries the occupant and appointment type.
// Keeping this a tagged struct (rather than a sentinel occupant string) means
// an occupant literally named "available" can never be confused with a free
// slot.
type SlotState struct {
	Booked          bool   `json:"booked"`
	Occupant        string `json:"occupant,omitempty"`
	AppointmentType string `json:"appointmentType,omitempty"`
}

// Available is the state of an unbooked slot.
var Available = SlotState{}

// BookedBy returns the state of a slot held by the given occupant.
func BookedBy(occupant, appointmentType string) SlotState {
	return SlotState{Booked: true, Occupant: occupant, AppointmentType: appointmentType}
}

// Descriptor renders the occupant label shown in availability reports,
// e.g. "Jane Doe (consultation)".
func (s SlotState) Descriptor() string {
	if !s.Booked {
		return ""
	}
	return fmt.Sprintf("%s (%s)", s.Occupant, s.AppointmentType)
}

// DaySchedule maps a slot start time ("HH:MM") to its state. Keys are exactly
// the grid times within office hours for that date.
type DaySchedule map[string]SlotState

// Calendar maps a calendar date ("YYYY-MM-DD") to its day schedule. Dates
// outside the pre-populated window are simply absent.
type Calendar map[string]DaySchedule
