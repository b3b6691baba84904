package schedule

import (
	"medisched/models"
)

// ScheduleStore defines the operations of the slot-based scheduling engine.
// A store owns one calendar; reads and the validate-then-commit booking path
// are serialized so no caller ever observes a half-committed booking.
type ScheduleStore interface {
	// Config returns the store's immutable office configuration.
	Config() models.OfficeConfig

	// ListAvailability partitions one date's slots into available and booked.
	// A date inside the valid window but without a day schedule yields an
	// empty report, not an error.
	ListAvailability(date string) (*models.AvailabilityReport, error)

	// CheckAvailabilityRange reports available slots for each date in
	// [startDate, endDate] inclusive.
	CheckAvailabilityRange(startDate, endDate string) ([]models.DayAvailability, error)

	// BookAppointment atomically books every slot covered by the request's
	// time span, or fails without mutating any slot.
	BookAppointment(req models.BookingRequest) (*models.BookingResult, error)
}
