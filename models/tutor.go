package models

import "time"

// TutorRecord is the persisted calendar for one tutor, keyed by TutorID.
type TutorRecord struct {
	ID           string           `bson:"id" json:"id"`
	TutorID      string           `bson:"tutorId" json:"tutorId"`
	Availability WeekAvailability `bson:"availability" json:"availability"`
	CreatedAt    time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// UpsertTutorRequest defines the payload for saving a tutor's availability.
type UpsertTutorRequest struct {
	TutorID      string           `json:"tutorId" binding:"required"`
	Availability WeekAvailability `json:"availability"`
}

// ParseAvailabilityRequest carries a free-text availability description to
// be interpreted into a structured week.
type ParseAvailabilityRequest struct {
	Description string `json:"description" binding:"required"`
}
