package models

import "testing"

func TestSlotState_TaggedFormDistinguishesVariants(t *testing.T) {
	// A patient literally named "available" must still read as booked.
	state := BookedBy("available", "consultation")
	if !state.Booked {
		t.Errorf("expected slot to be booked")
	}
	if state.Descriptor() != "available (consultation)" {
		t.Errorf("unexpected descriptor: %q", state.Descriptor())
	}
	if state == Available {
		t.Errorf("booked slot compares equal to the available state")
	}
}

func TestSlotState_AvailableDescriptorIsEmpty(t *testing.T) {
	if Available.Descriptor() != "" {
		t.Errorf("available slot should have no occupant descriptor, got %q", Available.Descriptor())
	}
}

func TestOfficeConfig_SlotsPerDay(t *testing.T) {
	tests := []struct {
		name string
		cfg  OfficeConfig
		want int
	}{
		{"hourly office day", OfficeConfig{StartHour: 8, EndHour: 17, SlotMinutes: 60}, 9},
		{"half-hour grid", OfficeConfig{StartHour: 9, EndHour: 12, SlotMinutes: 30}, 6},
		{"zero duration", OfficeConfig{StartHour: 8, EndHour: 17}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.SlotsPerDay(); got != tc.want {
				t.Errorf("expected %d slots, got %d", tc.want, got)
			}
		})
	}
}
