package schedule

import (
	"testing"

	"calendarcopilot/models"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		week      *models.WeekAvailability
		wantSlots int
		wantHours string
	}{
		{
			name:      "nil week",
			week:      nil,
			wantSlots: 0,
			wantHours: "0.0",
		},
		{
			name:      "empty week",
			week:      &models.WeekAvailability{},
			wantSlots: 0,
			wantHours: "0.0",
		},
		{
			name: "seven slots across days",
			week: &models.WeekAvailability{
				Monday:   []string{"09:00", "09:30", "10:00"},
				Thursday: []string{"14:00", "14:30"},
				Sunday:   []string{"20:00", "20:30"},
			},
			wantSlots: 7,
			wantHours: "3.5",
		},
		{
			name: "duplicates count as distinct slots",
			week: &models.WeekAvailability{
				Friday: []string{"09:00", "09:00"},
			},
			wantSlots: 2,
			wantHours: "1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.week)
			if got.TotalSlots != tt.wantSlots {
				t.Errorf("TotalSlots = %d, want %d", got.TotalSlots, tt.wantSlots)
			}
			if got.TotalHours != tt.wantHours {
				t.Errorf("TotalHours = %q, want %q", got.TotalHours, tt.wantHours)
			}
		})
	}
}
