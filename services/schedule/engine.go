package schedule

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"medisched/models"

	"github.com/google/uuid"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"

	// DefaultAppointmentType is used when a booking request omits the type.
	DefaultAppointmentType = "consultation"
)

// DefaultScheduleStore is the in-memory ScheduleStore implementation. The
// calendar is the single shared mutable resource; a store-wide RWMutex keeps
// the validate-then-commit booking path one critical section, and readers
// never interleave with a commit.
type DefaultScheduleStore struct {
	mu       sync.RWMutex
	cfg      models.OfficeConfig
	today    time.Time // reference date, fixed at construction
	calendar models.Calendar
}

// NewScheduleStore builds a store and eagerly populates its calendar for
// cfg.DaysAhead consecutive days starting at the reference date, every slot
// available.
func NewScheduleStore(cfg models.OfficeConfig, reference time.Time) *DefaultScheduleStore {
	s := &DefaultScheduleStore{cfg: cfg}
	s.Initialize(reference)
	return s
}

// Initialize (re)populates the full calendar. Re-invoking replaces the
// previous calendar wholesale; it is intended for startup only.
func (s *DefaultScheduleStore) Initialize(reference time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.today = truncateToDate(reference)
	s.calendar = make(models.Calendar, s.cfg.DaysAhead)

	gridTimes := slotGrid(s.cfg)
	for dayOffset := 0; dayOffset < s.cfg.DaysAhead; dayOffset++ {
		dateKey := s.today.AddDate(0, 0, dayOffset).Format(dateLayout)
		day := make(models.DaySchedule, len(gridTimes))
		for _, slotTime := range gridTimes {
			day[slotTime] = models.Available
		}
		s.calendar[dateKey] = day
	}
}

func (s *DefaultScheduleStore) Config() models.OfficeConfig {
	return s.cfg
}

// ListAvailability implements the single-date availability query.
func (s *DefaultScheduleStore) ListAvailability(date string) (*models.AvailabilityReport, error) {
	parsed, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, newScheduleError(CodeInvalidDateFormat,
			"Invalid date format. Please provide date in YYYY-MM-DD format.")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if parsed.Before(s.today) {
		return nil, newScheduleError(CodePastDateNotAllowed,
			"Cannot check availability for past date: %s", date)
	}

	day, ok := s.calendar[date]
	if !ok {
		// A date beyond the pre-populated window has no data; that is an
		// empty schedule, not an error.
		return &models.AvailabilityReport{
			Date:               date,
			AvailableSlots:     []string{},
			BookedAppointments: map[string]string{},
		}, nil
	}

	report := &models.AvailabilityReport{
		Date:               date,
		AvailableSlots:     []string{},
		BookedAppointments: map[string]string{},
		TotalSlots:         len(day),
	}
	for slotTime, state := range day {
		if state.Booked {
			report.BookedAppointments[slotTime] = state.Descriptor()
		} else {
			report.AvailableSlots = append(report.AvailableSlots, slotTime)
		}
	}
	sort.Strings(report.AvailableSlots)
	report.AvailableCount = len(report.AvailableSlots)
	report.BookedCount = len(report.BookedAppointments)
	return report, nil
}

// CheckAvailabilityRange implements the inclusive date-range query. Unlike
// the single-date query, a range is rejected only when it ends before the
// reference date, so a range straddling today is answered in full.
func (s *DefaultScheduleStore) CheckAvailabilityRange(startDate, endDate string) ([]models.DayAvailability, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		return nil, newScheduleError(CodeInvalidDateFormat,
			"Invalid date format. Please use YYYY-MM-DD for both start and end dates.")
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return nil, newScheduleError(CodeInvalidDateFormat,
			"Invalid date format. Please use YYYY-MM-DD for both start and end dates.")
	}
	if start.After(end) {
		return nil, newScheduleError(CodeInvalidDateRange,
			"Start date cannot be after end date.")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if end.Before(s.today) {
		return nil, newScheduleError(CodeAllPastDates,
			"Cannot check availability for past dates. Please provide future dates.")
	}

	var days []models.DayAvailability
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateKey := d.Format(dateLayout)
		entry := models.DayAvailability{
			Date:           dateKey,
			AvailableSlots: []string{},
		}
		for slotTime, state := range s.calendar[dateKey] {
			if !state.Booked {
				entry.AvailableSlots = append(entry.AvailableSlots, slotTime)
			}
		}
		sort.Strings(entry.AvailableSlots)
		if len(entry.AvailableSlots) > 0 {
			entry.Summary = fmt.Sprintf("On %s, available appointment slots at: %s.",
				dateKey, strings.Join(entry.AvailableSlots, ", "))
		} else {
			entry.Summary = fmt.Sprintf("No appointment slots available on %s.", dateKey)
		}
		days = append(days, entry)
	}
	return days, nil
}

// BookAppointment validates the request, derives the slot span, checks every
// slot, and only then commits all of them. A conflict anywhere in the span
// leaves the calendar untouched.
func (s *DefaultScheduleStore) BookAppointment(req models.BookingRequest) (*models.BookingResult, error) {
	if !s.cfg.Bookable {
		return nil, newScheduleError(CodeBookingNotAllowed,
			"This schedule is read-only and does not accept bookings.")
	}

	patientName := strings.TrimSpace(req.PatientName)
	if patientName == "" {
		return nil, newScheduleError(CodeMissingPatientName,
			"Patient name is required to book an appointment.")
	}

	appointmentStart, err := time.ParseInLocation(dateTimeLayout, req.Date+" "+req.StartTime, time.Local)
	if err != nil {
		return nil, newScheduleError(CodeInvalidDateTimeFormat,
			"Invalid date or time format. Please use YYYY-MM-DD for date and HH:MM for time.")
	}
	appointmentEnd, err := time.ParseInLocation(dateTimeLayout, req.Date+" "+req.EndTime, time.Local)
	if err != nil {
		return nil, newScheduleError(CodeInvalidDateTimeFormat,
			"Invalid date or time format. Please use YYYY-MM-DD for date and HH:MM for time.")
	}
	if !appointmentStart.Before(appointmentEnd) {
		return nil, newScheduleError(CodeInvalidTimeRange,
			"Appointment start time must be before end time.")
	}

	appointmentType := strings.TrimSpace(req.AppointmentType)
	if appointmentType == "" {
		appointmentType = DefaultAppointmentType
	}

	// Derive the grid-aligned slot keys covered by [start, end). A sub-grid
	// start time is floored onto the grid so the span covers every slot it
	// overlaps.
	var requiredSlots []string
	step := time.Duration(s.cfg.SlotMinutes) * time.Minute
	for t := floorToGrid(appointmentStart, s.cfg.StartHour, s.cfg.SlotMinutes); t.Before(appointmentEnd); t = t.Add(step) {
		requiredSlots = append(requiredSlots, t.Format(timeLayout))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.calendar[req.Date]
	if !ok {
		return nil, newScheduleError(CodeDateNotAvailable,
			"No appointment slots available on %s.", req.Date)
	}

	// First pass: every required slot must exist and be available.
	for _, slotTime := range requiredSlots {
		state, exists := day[slotTime]
		if !exists || state.Booked {
			existing := "unknown patient"
			if exists {
				existing = state.Descriptor()
			}
			return nil, &ScheduleError{
				Code: CodeSlotAlreadyBooked,
				Message: fmt.Sprintf("Appointment slot %s on %s is already booked for %s.",
					slotTime, req.Date, existing),
				ConflictingSlot:  slotTime,
				ExistingOccupant: existing,
			}
		}
	}

	// Second pass: commit the whole span.
	for _, slotTime := range requiredSlots {
		day[slotTime] = models.BookedBy(patientName, appointmentType)
	}

	return &models.BookingResult{
		BookingID:       uuid.New().String()[:8],
		PatientName:     patientName,
		AppointmentType: appointmentType,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationSlots:   len(requiredSlots),
		BookedSlots:     requiredSlots,
	}, nil
}

// slotGrid returns the ordered slot start times within office hours.
func slotGrid(cfg models.OfficeConfig) []string {
	var times []string
	for minutes := cfg.StartHour * 60; minutes < cfg.EndHour*60; minutes += cfg.SlotMinutes {
		times = append(times, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return times
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// floorToGrid rounds t down to the nearest slot boundary on the office grid,
// which is anchored at the office start hour. Times before the start hour
// floor downward too, so a span outside office hours still derives keys that
// the day table cannot contain.
func floorToGrid(t time.Time, startHour, slotMinutes int) time.Time {
	minutes := t.Hour()*60 + t.Minute()
	delta := minutes - startHour*60
	steps := delta / slotMinutes
	if delta < 0 && delta%slotMinutes != 0 {
		steps--
	}
	aligned := startHour*60 + steps*slotMinutes
	if aligned < 0 {
		aligned = 0
	}
	return time.Date(t.Year(), t.Month(), t.Day(), aligned/60, aligned%60, 0, 0, t.Location())
}
