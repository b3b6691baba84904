package schedule

import "fmt"

// Error kinds reported by the schedule engine. Every validation failure maps
// to exactly one kind; the engine never retries and never panics.
const (
	CodeInvalidDateFormat     = "INVALID_DATE_FORMAT"
	CodeInvalidDateTimeFormat = "INVALID_DATETIME_FORMAT"
	CodeInvalidDateRange      = "INVALID_DATE_RANGE"
	CodeInvalidTimeRange      = "INVALID_TIME_RANGE"
	CodePastDateNotAllowed    = "PAST_DATE_NOT_ALLOWED"
	CodeAllPastDates          = "ALL_PAST_DATES"
	CodeMissingPatientName    = "MISSING_PATIENT_NAME"
	CodeDateNotAvailable      = "DATE_NOT_AVAILABLE"
	CodeSlotAlreadyBooked     = "SLOT_ALREADY_BOOKED"
	CodeBookingNotAllowed     = "BOOKING_NOT_ALLOWED"
)

// ScheduleError is a structured engine failure carrying a stable error kind
// plus a human-readable message.
type ScheduleError struct {
	Code    string
	Message string

	// Set only for SLOT_ALREADY_BOOKED.
	ConflictingSlot  string
	ExistingOccupant string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newScheduleError(code, format string, args ...any) *ScheduleError {
	return &ScheduleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsScheduleError unwraps err as a *ScheduleError if it is one.
func AsScheduleError(err error) (*ScheduleError, bool) {
	se, ok := err.(*ScheduleError)
	return se, ok
}
