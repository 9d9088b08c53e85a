// File: database/repository/tutor/tutorMongoCrud.go
package tutorRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendarcopilot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// Upsert creates the record on first write and replaces the availability
// wholesale on subsequent writes. The whole create-or-replace is a single
// FindOneAndUpdate, so concurrent upserts on the same tutorId cannot
// interleave; the last completed write wins. createdAt is only set on
// insert and survives every later update.
func (r *mongoTutorRepo) Upsert(ctx context.Context, tutorID string, availability models.WeekAvailability) (*models.TutorRecord, error) {
	if tutorID == "" {
		return nil, errors.New("tutor record must have a tutorId")
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"tutorId": tutorID}
	update := bson.M{
		"$set": bson.M{
			"tutorId":      tutorID,
			"availability": *availability.Normalized(),
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record models.TutorRecord
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to upsert tutor %s: %w", tutorID, err)
	}
	return &record, nil
}

// GetAll returns every tutor record, most recently updated first.
func (r *mongoTutorRepo) GetAll(ctx context.Context) ([]models.TutorRecord, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.TutorRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding tutors: %w", err)
	}
	return records, nil
}

// GetByTutorID returns the record for the given key, or mongo.ErrNoDocuments
// when the key is absent.
func (r *mongoTutorRepo) GetByTutorID(ctx context.Context, tutorID string) (*models.TutorRecord, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var record models.TutorRecord
	if err := r.coll.FindOne(ctx, bson.M{"tutorId": tutorID}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes the record if present and reports whether one was removed.
// A missing key is not an error.
func (r *mongoTutorRepo) Delete(ctx context.Context, tutorID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"tutorId": tutorID})
	if err != nil {
		return false, fmt.Errorf("failed to delete tutor %s: %w", tutorID, err)
	}
	return res.DeletedCount > 0, nil
}
