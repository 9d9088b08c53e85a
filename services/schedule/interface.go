package schedule

import (
	"context"

	"calendarcopilot/models"
)

// AvailabilityInterpreter translates a free-text availability description
// into a structured week. Implemented by services/intelligence; consumed
// here so the schedule service never depends on a concrete AI backend.
type AvailabilityInterpreter interface {
	ParseAvailability(ctx context.Context, description string) (*models.WeekAvailability, error)
}

// GeneratedCalendar is the result of interpreting a description: the
// normalized week plus its display stats.
type GeneratedCalendar struct {
	Availability *models.WeekAvailability `json:"availability"`
	Stats        Stats                    `json:"stats"`
}

// ScheduleService is the application surface over tutor calendars.
type ScheduleService interface {
	Generate(ctx context.Context, description string) (*GeneratedCalendar, error)
	Save(ctx context.Context, tutorID string, availability models.WeekAvailability) (*models.TutorRecord, error)
	List(ctx context.Context) ([]models.TutorRecord, error)
	Get(ctx context.Context, tutorID string) (*models.TutorRecord, error)
	Delete(ctx context.Context, tutorID string) (bool, error)
}
