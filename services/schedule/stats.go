package schedule

import (
	"fmt"

	"calendarcopilot/models"
)

// Stats summarizes a weekly calendar for display.
type Stats struct {
	TotalSlots int    `json:"totalSlots"`
	TotalHours string `json:"totalHours"`
}

// ComputeStats counts slots across all seven days; each slot is half an
// hour, and hours are formatted with one fractional digit. A nil week
// yields zero stats.
func ComputeStats(week *models.WeekAvailability) Stats {
	if week == nil {
		return Stats{TotalSlots: 0, TotalHours: "0.0"}
	}
	total := 0
	for _, day := range models.DayNames {
		total += len(week.Day(day))
	}
	return Stats{
		TotalSlots: total,
		TotalHours: fmt.Sprintf("%.1f", float64(total)*0.5),
	}
}
