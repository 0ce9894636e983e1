package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/insight"
	"alcyxob/fitmetric/internal/repository"
)

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	return r.users, nil
}

type stubWorkoutRepo struct {
	workouts []domain.Workout
}

func (r *stubWorkoutRepo) Create(_ context.Context, _ *domain.Workout) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}

func (r *stubWorkoutRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*domain.Workout, error) {
	return nil, repository.ErrNotFound
}

func (r *stubWorkoutRepo) GetByUser(_ context.Context, _ primitive.ObjectID) ([]domain.Workout, error) {
	return r.workouts, nil
}

func (r *stubWorkoutRepo) GetRecentCompleted(_ context.Context, _, _ primitive.ObjectID, _ int64) ([]domain.Workout, error) {
	return nil, nil
}

func (r *stubWorkoutRepo) GetByUserSince(_ context.Context, userID primitive.ObjectID, since time.Time) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range r.workouts {
		if w.UserID == userID && !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out, nil
}

func TestSummarizeWeek(t *testing.T) {
	day := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	workouts := []domain.Workout{
		{Date: day, TotalVolume: 1000, Status: domain.WorkoutCompleted},
		{Date: day.Add(2 * time.Hour), TotalVolume: 500, Status: domain.WorkoutCompleted}, // same day
		{Date: day.AddDate(0, 0, 2), TotalVolume: 800, Status: domain.WorkoutCompleted},
		{Date: day.AddDate(0, 0, 3), TotalVolume: 700, Status: domain.WorkoutPlanned}, // not completed
	}

	stats := summarizeWeek(workouts)
	if stats.DaysActive != 2 {
		t.Errorf("days active = %d, want 2 (same-day sessions count once)", stats.DaysActive)
	}
	if stats.TotalVolume != 2300 {
		t.Errorf("total volume = %v, want 2300 (planned session excluded)", stats.TotalVolume)
	}
}

func TestRunNotifiesEveryUser(t *testing.T) {
	var mu sync.Mutex
	var received []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-fitmetric-secret") != "test-secret" {
			t.Errorf("missing webhook secret header")
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		mu.Lock()
		received = append(received, payload)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	userA := domain.User{ID: primitive.NewObjectID(), Name: "A"}
	userB := domain.User{ID: primitive.NewObjectID(), Name: "B"}
	workoutRepo := &stubWorkoutRepo{workouts: []domain.Workout{
		{UserID: userA.ID, Date: time.Now().UTC().AddDate(0, 0, -1), TotalVolume: 900, Status: domain.WorkoutCompleted},
	}}

	job := NewNotificationJob(
		&stubUserRepo{users: []domain.User{userA, userB}},
		workoutRepo,
		insight.NewDisabledGenerator(),
		insight.NewN8NClient(server.URL, "test-secret"),
	)
	job.Run(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("received %d webhook calls, want 2", len(received))
	}
	for _, payload := range received {
		if payload["eventId"] == "" || payload["eventId"] == nil {
			t.Error("payload missing eventId")
		}
		if payload["message"] == "" || payload["message"] == nil {
			t.Error("payload missing message (fallback text expected with AI disabled)")
		}
	}
}

func TestRunSkipsWithoutWebhook(t *testing.T) {
	job := NewNotificationJob(
		&stubUserRepo{users: []domain.User{{ID: primitive.NewObjectID(), Name: "A"}}},
		&stubWorkoutRepo{},
		insight.NewDisabledGenerator(),
		insight.NewN8NClient("", ""),
	)
	// Must return without touching anything.
	job.Run(context.Background())
}
