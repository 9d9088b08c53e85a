package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	tutorRepo "calendarcopilot/database/repository/tutor"
	"calendarcopilot/models"
	"calendarcopilot/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultScheduleService implements ScheduleService over the tutor
// repository, the availability interpreter, and an optional Redis cache
// for the list view. A nil Cache disables caching.
type DefaultScheduleService struct {
	Repo        tutorRepo.TutorRepository
	Interpreter AvailabilityInterpreter
	Cache       *redis.Client
}

func (s *DefaultScheduleService) Generate(ctx context.Context, description string) (*GeneratedCalendar, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, NewValidationError("description is required")
	}

	week, err := s.Interpreter.ParseAvailability(ctx, description)
	if err != nil {
		return nil, NewInterpreterError("failed to interpret availability", err)
	}

	return &GeneratedCalendar{
		Availability: week,
		Stats:        ComputeStats(week),
	}, nil
}

func (s *DefaultScheduleService) Save(ctx context.Context, tutorID string, availability models.WeekAvailability) (*models.TutorRecord, error) {
	tutorID = strings.TrimSpace(tutorID)
	if tutorID == "" {
		return nil, NewValidationError("tutorId is required")
	}

	record, err := s.Repo.Upsert(ctx, tutorID, availability)
	if err != nil {
		return nil, NewStorageError("failed to save tutor calendar", err)
	}

	s.invalidateListCache(ctx)
	return record, nil
}

func (s *DefaultScheduleService) List(ctx context.Context) ([]models.TutorRecord, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, utils.TutorListCacheKey).Result(); err == nil {
			var records []models.TutorRecord
			if err := json.Unmarshal([]byte(cached), &records); err == nil {
				return records, nil
			}
		}
	}

	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, NewStorageError("failed to fetch tutors", err)
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(records); err == nil {
			if err := s.Cache.Set(ctx, utils.TutorListCacheKey, payload, utils.TutorListCacheTTL).Err(); err != nil {
				utils.GetLogger().Debug("tutor list cache write failed", zap.Error(err))
			}
		}
	}
	return records, nil
}

func (s *DefaultScheduleService) Get(ctx context.Context, tutorID string) (*models.TutorRecord, error) {
	record, err := s.Repo.GetByTutorID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("tutor not found")
		}
		return nil, NewStorageError("failed to fetch tutor", err)
	}
	return record, nil
}

func (s *DefaultScheduleService) Delete(ctx context.Context, tutorID string) (bool, error) {
	deleted, err := s.Repo.Delete(ctx, tutorID)
	if err != nil {
		return false, NewStorageError("failed to delete tutor", err)
	}
	if deleted {
		s.invalidateListCache(ctx)
	}
	return deleted, nil
}

func (s *DefaultScheduleService) invalidateListCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.TutorListCacheKey).Err(); err != nil {
		utils.GetLogger().Debug("tutor list cache invalidation failed", zap.Error(err))
	}
}
