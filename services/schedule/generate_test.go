package schedule

import (
	"math/rand"
	"testing"
	"time"

	"medisched/models"
)

func generatedConfig() models.OfficeConfig {
	return models.OfficeConfig{
		StartHour:   8,
		EndHour:     17,
		SlotMinutes: 60,
		DaysAhead:   7,
	}
}

func TestNewGeneratedScheduleStore_SamplesSlotsPerDay(t *testing.T) {
	reference := time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewSource(42))
	store := NewGeneratedScheduleStore(generatedConfig(), reference, 6, rng, nil)

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		date := reference.AddDate(0, 0, dayOffset).Format("2006-01-02")
		report, err := store.ListAvailability(date)
		if err != nil {
			t.Fatalf("ListAvailability(%s) failed: %v", date, err)
		}
		if report.TotalSlots != 6 {
			t.Errorf("day %s: expected 6 sampled slots, got %d", date, report.TotalSlots)
		}
		if report.AvailableCount != 6 {
			t.Errorf("day %s: expected all sampled slots available, got %d", date, report.AvailableCount)
		}

		// Sampled slots must be distinct grid times, ascending.
		for i := 1; i < len(report.AvailableSlots); i++ {
			if report.AvailableSlots[i-1] >= report.AvailableSlots[i] {
				t.Errorf("day %s: slots not strictly ascending: %v", date, report.AvailableSlots)
			}
		}
	}
}

func TestNewGeneratedScheduleStore_SlotsLieOnGrid(t *testing.T) {
	reference := time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewSource(7))
	store := NewGeneratedScheduleStore(generatedConfig(), reference, 6, rng, nil)

	grid := map[string]bool{}
	for _, slot := range slotGrid(generatedConfig()) {
		grid[slot] = true
	}

	report, err := store.ListAvailability("2024-07-03")
	if err != nil {
		t.Fatalf("ListAvailability failed: %v", err)
	}
	for _, slot := range report.AvailableSlots {
		if !grid[slot] {
			t.Errorf("sampled slot %s is not an office-hours grid time", slot)
		}
	}
}

func TestNewGeneratedScheduleStore_IsReadOnly(t *testing.T) {
	reference := time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewSource(1))
	store := NewGeneratedScheduleStore(generatedConfig(), reference, 6, rng, nil)

	_, err := store.BookAppointment(models.BookingRequest{
		Date: "2024-07-01", StartTime: "09:00", EndTime: "10:00", PatientName: "Jane Doe",
	})
	assertScheduleError(t, err, CodeBookingNotAllowed)
}

func TestNewGeneratedScheduleStore_ClampsNegativeSample(t *testing.T) {
	reference := time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewSource(5))
	store := NewGeneratedScheduleStore(generatedConfig(), reference, -1, rng, nil)

	report, err := store.ListAvailability("2024-07-01")
	if err != nil {
		t.Fatalf("ListAvailability failed: %v", err)
	}
	if report.TotalSlots != 0 {
		t.Errorf("expected an empty day for a negative sample size, got %d slots", report.TotalSlots)
	}
}

func TestNewGeneratedScheduleStore_ClampsOversizedSample(t *testing.T) {
	reference := time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewSource(3))
	store := NewGeneratedScheduleStore(generatedConfig(), reference, 50, rng, nil)

	report, err := store.ListAvailability("2024-07-01")
	if err != nil {
		t.Fatalf("ListAvailability failed: %v", err)
	}
	if report.TotalSlots != 9 {
		t.Errorf("expected sample clamped to the 9-slot grid, got %d", report.TotalSlots)
	}
}
