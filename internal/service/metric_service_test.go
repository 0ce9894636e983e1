package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/fitness"
	"alcyxob/fitmetric/internal/repository"
)

// stubMetricRepo merges upserts per (user, day) like the real collection.
type stubMetricRepo struct {
	docs map[string]*domain.DailyMetric

	lastSince time.Time
}

func newStubMetricRepo() *stubMetricRepo {
	return &stubMetricRepo{docs: make(map[string]*domain.DailyMetric)}
}

func (r *stubMetricRepo) UpsertForDay(_ context.Context, userID primitive.ObjectID, at time.Time, values domain.MetricValues, notes string) (*domain.DailyMetric, error) {
	day := at.UTC().Truncate(24 * time.Hour)
	key := userID.Hex() + day.Format("2006-01-02")

	doc, ok := r.docs[key]
	if !ok {
		doc = &domain.DailyMetric{
			ID:     primitive.NewObjectID(),
			UserID: userID,
			Date:   day,
		}
		r.docs[key] = doc
	}
	if values.Weight != nil {
		doc.Metrics.Weight = values.Weight
	}
	if values.Steps != nil {
		doc.Metrics.Steps = values.Steps
	}
	if values.SleepHours != nil {
		doc.Metrics.SleepHours = values.SleepHours
	}
	if values.Mood != nil {
		doc.Metrics.Mood = values.Mood
	}
	if values.WaterIntake != nil {
		doc.Metrics.WaterIntake = values.WaterIntake
	}
	if values.CaloriesBurned != nil {
		doc.Metrics.CaloriesBurned = values.CaloriesBurned
	}
	if notes != "" {
		doc.Notes = notes
	}
	copied := *doc
	return &copied, nil
}

func (r *stubMetricRepo) GetHistory(_ context.Context, userID primitive.ObjectID, since time.Time) ([]domain.DailyMetric, error) {
	r.lastSince = since
	var out []domain.DailyMetric
	for _, doc := range r.docs {
		if doc.UserID == userID && !doc.Date.Before(since) {
			out = append(out, *doc)
		}
	}
	return out, nil
}

var _ repository.MetricRepository = (*stubMetricRepo)(nil)

func TestLogDailyMetricMergesSameDay(t *testing.T) {
	repo := newStubMetricRepo()
	svc := NewMetricService(repo, newStubUserRepo())
	userID := primitive.NewObjectID()

	steps := 8000
	first, err := svc.LogDailyMetric(context.Background(), userID, domain.MetricValues{Steps: &steps}, "")
	if err != nil {
		t.Fatalf("first log: %v", err)
	}

	weight := 81.5
	second, err := svc.LogDailyMetric(context.Background(), userID, domain.MetricValues{Weight: &weight}, "evening weigh-in")
	if err != nil {
		t.Fatalf("second log: %v", err)
	}

	if first.ID != second.ID {
		t.Fatal("same-day logs produced two documents")
	}
	if second.Metrics.Steps == nil || *second.Metrics.Steps != 8000 {
		t.Error("morning steps lost by evening weight update")
	}
	if second.Metrics.Weight == nil || *second.Metrics.Weight != 81.5 {
		t.Error("weight not recorded")
	}
	if second.Notes != "evening weigh-in" {
		t.Errorf("notes = %q", second.Notes)
	}
}

func TestGetMetricHistoryDefaultWindow(t *testing.T) {
	repo := newStubMetricRepo()
	svc := NewMetricService(repo, newStubUserRepo())
	userID := primitive.NewObjectID()

	if _, err := svc.GetMetricHistory(context.Background(), userID, 0); err != nil {
		t.Fatalf("GetMetricHistory: %v", err)
	}

	wantSince := time.Now().UTC().AddDate(0, 0, -30)
	if diff := repo.lastSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Errorf("default window since = %v, want about 30 days ago", repo.lastSince)
	}
}

func TestGetMetricHistoryCustomWindow(t *testing.T) {
	repo := newStubMetricRepo()
	svc := NewMetricService(repo, newStubUserRepo())

	if _, err := svc.GetMetricHistory(context.Background(), primitive.NewObjectID(), 7); err != nil {
		t.Fatalf("GetMetricHistory: %v", err)
	}
	wantSince := time.Now().UTC().AddDate(0, 0, -7)
	if diff := repo.lastSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Errorf("since = %v, want about 7 days ago", repo.lastSince)
	}
}

func TestEstimateCaloriesUsesProfileWeight(t *testing.T) {
	user := testUser(primitive.NewObjectID())
	user.Weight = 80
	svc := NewMetricService(newStubMetricRepo(), newStubUserRepo(user))

	// 4.8 MET * 80kg * 1h = 384
	got, err := svc.EstimateCalories(context.Background(), user.ID, 60, fitness.IntensityModerate)
	if err != nil {
		t.Fatalf("EstimateCalories: %v", err)
	}
	if got != 384 {
		t.Errorf("calories = %d, want 384", got)
	}
}

func TestEstimateCaloriesUnknownUserDefaultsWeight(t *testing.T) {
	svc := NewMetricService(newStubMetricRepo(), newStubUserRepo())

	// 6.0 MET * default 70kg * 0.5h = 210
	got, err := svc.EstimateCalories(context.Background(), primitive.NewObjectID(), 30, fitness.IntensityHigh)
	if err != nil {
		t.Fatalf("EstimateCalories: %v", err)
	}
	if got != 210 {
		t.Errorf("calories = %d, want 210", got)
	}
}
