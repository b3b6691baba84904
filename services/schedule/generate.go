package schedule

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"medisched/models"

	"go.uber.org/zap"
)

// NewGeneratedScheduleStore builds a read-only store whose calendar is
// pre-randomized: for each day in the window, slotsPerDay slot times are
// sampled from the office-hour grid and marked available; the remaining grid
// times are absent from the day schedule. Booking against such a store fails
// with BOOKING_NOT_ALLOWED.
func NewGeneratedScheduleStore(cfg models.OfficeConfig, reference time.Time, slotsPerDay int, rng *rand.Rand, logger *zap.Logger) *DefaultScheduleStore {
	cfg.Bookable = false
	s := &DefaultScheduleStore{
		cfg:      cfg,
		today:    truncateToDate(reference),
		calendar: make(models.Calendar, cfg.DaysAhead),
	}

	gridTimes := slotGrid(cfg)
	if slotsPerDay > len(gridTimes) {
		slotsPerDay = len(gridTimes)
	}
	if slotsPerDay < 0 {
		slotsPerDay = 0
	}

	for dayOffset := 0; dayOffset < cfg.DaysAhead; dayOffset++ {
		dateKey := s.today.AddDate(0, 0, dayOffset).Format(dateLayout)
		sampled := sampleSlots(gridTimes, slotsPerDay, rng)
		day := make(models.DaySchedule, len(sampled))
		for _, slotTime := range sampled {
			day[slotTime] = models.Available
		}
		s.calendar[dateKey] = day
		if logger != nil {
			logger.Debug("generated day schedule",
				zap.String("date", dateKey),
				zap.String("slots", strings.Join(sampled, ", ")))
		}
	}
	return s
}

// sampleSlots picks n distinct slot times from the grid, sorted ascending.
func sampleSlots(gridTimes []string, n int, rng *rand.Rand) []string {
	perm := rng.Perm(len(gridTimes))
	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, gridTimes[idx])
	}
	sort.Strings(picked)
	return picked
}
