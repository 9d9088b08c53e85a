// File: database/repository/tutor/interface.go
package tutorRepo

import (
	"context"
	"fmt"

	"calendarcopilot/config"
	"calendarcopilot/database"
	"calendarcopilot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TutorRepository is the persistence contract for tutor calendars. A key is
// either absent or holds exactly one record; Upsert moves absent -> present
// and replaces the availability wholesale on every subsequent call.
type TutorRepository interface {
	Upsert(ctx context.Context, tutorID string, availability models.WeekAvailability) (*models.TutorRecord, error)
	GetAll(ctx context.Context) ([]models.TutorRecord, error)
	GetByTutorID(ctx context.Context, tutorID string) (*models.TutorRecord, error)
	Delete(ctx context.Context, tutorID string) (bool, error)
}

type mongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo constructs a new MongoDB TutorRepository.
func NewMongoTutorRepo() TutorRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDBName)
	repo := &mongoTutorRepo{
		coll: db.Collection("tutors"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
