package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"calendarcopilot/handlers"
	"calendarcopilot/models"
	"calendarcopilot/services/schedule"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryTutorRepo struct {
	mu      sync.Mutex
	records map[string]models.TutorRecord
}

func (r *memoryTutorRepo) Upsert(ctx context.Context, tutorID string, availability models.WeekAvailability) (*models.TutorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	record, ok := r.records[tutorID]
	if !ok {
		record = models.TutorRecord{ID: tutorID, TutorID: tutorID, CreatedAt: now}
	}
	record.Availability = *availability.Normalized()
	record.UpdatedAt = now
	r.records[tutorID] = record
	out := record
	return &out, nil
}

func (r *memoryTutorRepo) GetAll(ctx context.Context) ([]models.TutorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]models.TutorRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}

func (r *memoryTutorRepo) GetByTutorID(ctx context.Context, tutorID string) (*models.TutorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[tutorID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := record
	return &out, nil
}

func (r *memoryTutorRepo) Delete(ctx context.Context, tutorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.records[tutorID]
	delete(r.records, tutorID)
	return ok, nil
}

type fakeInterpreter struct {
	week *models.WeekAvailability
	err  error
}

func (f *fakeInterpreter) ParseAvailability(ctx context.Context, description string) (*models.WeekAvailability, error) {
	return f.week, f.err
}

func newTestRouter(interpreter schedule.AvailabilityInterpreter) (*gin.Engine, *memoryTutorRepo) {
	gin.SetMode(gin.TestMode)

	repo := &memoryTutorRepo{records: make(map[string]models.TutorRecord)}
	svc := &schedule.DefaultScheduleService{Repo: repo, Interpreter: interpreter}
	h := handlers.NewScheduleHandler(svc)

	r := gin.New()
	r.GET("/api/tutors", h.ListTutorsHandler)
	r.GET("/api/tutors/:tutorId", h.GetTutorHandler)
	r.POST("/api/tutors", h.UpsertTutorHandler)
	r.DELETE("/api/tutors/:tutorId", h.DeleteTutorHandler)
	r.POST("/api/availability/parse", h.ParseAvailabilityHandler)
	return r, repo
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpsertTutorEndpoint(t *testing.T) {
	r, _ := newTestRouter(nil)

	t.Run("creates and returns the record", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/tutors", models.UpsertTutorRequest{
			TutorID:      "alice",
			Availability: models.WeekAvailability{Monday: []string{"09:00", "09:30"}},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusCreated, w.Body.String())
		}

		var record models.TutorRecord
		if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if record.TutorID != "alice" {
			t.Errorf("tutorId = %q, want %q", record.TutorID, "alice")
		}
		if len(record.Availability.Monday) != 2 {
			t.Errorf("monday = %v, want two slots", record.Availability.Monday)
		}
	})

	t.Run("missing tutorId is a 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/tutors", map[string]interface{}{
			"availability": map[string]interface{}{"monday": []string{"09:00"}},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestGetTutorEndpoint(t *testing.T) {
	r, _ := newTestRouter(nil)

	if w := doRequest(t, r, http.MethodGet, "/api/tutors/ghost", nil); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	doRequest(t, r, http.MethodPost, "/api/tutors", models.UpsertTutorRequest{TutorID: "bob"})
	if w := doRequest(t, r, http.MethodGet, "/api/tutors/bob", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestListTutorsEndpoint(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/tutors", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("empty list body = %s, want []", body)
	}

	doRequest(t, r, http.MethodPost, "/api/tutors", models.UpsertTutorRequest{TutorID: "t1"})
	time.Sleep(2 * time.Millisecond)
	doRequest(t, r, http.MethodPost, "/api/tutors", models.UpsertTutorRequest{TutorID: "t2"})

	w = doRequest(t, r, http.MethodGet, "/api/tutors", nil)
	var records []models.TutorRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(records) != 2 || records[0].TutorID != "t2" {
		t.Errorf("records = %+v, want t2 first", records)
	}
}

func TestDeleteTutorEndpoint(t *testing.T) {
	r, _ := newTestRouter(nil)

	if w := doRequest(t, r, http.MethodDelete, "/api/tutors/ghost", nil); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	doRequest(t, r, http.MethodPost, "/api/tutors", models.UpsertTutorRequest{TutorID: "carol"})
	if w := doRequest(t, r, http.MethodDelete, "/api/tutors/carol", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestParseAvailabilityEndpoint(t *testing.T) {
	week := &models.WeekAvailability{Monday: []string{"09:00"}}

	t.Run("returns availability and stats", func(t *testing.T) {
		r, _ := newTestRouter(&fakeInterpreter{week: week})
		w := doRequest(t, r, http.MethodPost, "/api/availability/parse", models.ParseAvailabilityRequest{
			Description: "monday mornings",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var generated schedule.GeneratedCalendar
		if err := json.Unmarshal(w.Body.Bytes(), &generated); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if generated.Stats.TotalSlots != 1 || generated.Stats.TotalHours != "0.5" {
			t.Errorf("stats = %+v, want 1 slot / 0.5 hours", generated.Stats)
		}
	})

	t.Run("missing description is a 400", func(t *testing.T) {
		r, _ := newTestRouter(&fakeInterpreter{week: week})
		w := doRequest(t, r, http.MethodPost, "/api/availability/parse", map[string]interface{}{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("interpreter failure is a 502", func(t *testing.T) {
		r, _ := newTestRouter(&fakeInterpreter{err: errors.New("model timeout")})
		w := doRequest(t, r, http.MethodPost, "/api/availability/parse", models.ParseAvailabilityRequest{
			Description: "monday mornings",
		})
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}
