package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/fitness"
	"alcyxob/fitmetric/internal/repository"
)

const defaultHistoryDays = 30

// --- Service Interface ---
type MetricService interface {
	// LogDailyMetric records measurements for today, merging into the
	// existing document when one exists for the current UTC day.
	LogDailyMetric(ctx context.Context, userID primitive.ObjectID, values domain.MetricValues, notes string) (*domain.DailyMetric, error)
	// GetMetricHistory returns the user's metrics for the last `days` days,
	// oldest first. days <= 0 means the default window.
	GetMetricHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.DailyMetric, error)
	// EstimateCalories gives a MET-based estimate for a session using the
	// user's profile weight. Advisory; nothing is persisted.
	EstimateCalories(ctx context.Context, userID primitive.ObjectID, durationMinutes float64, intensity fitness.Intensity) (int, error)
}

// --- Service Implementation ---

type metricService struct {
	metricRepo repository.MetricRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewMetricService creates a new instance of metricService.
func NewMetricService(metricRepo repository.MetricRepository, userRepo repository.UserRepository) MetricService {
	return &metricService{
		metricRepo: metricRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

// LogDailyMetric upserts today's document. The repository write is atomic,
// so two devices logging different fields at the same moment both land in
// the same per-day document.
func (s *metricService) LogDailyMetric(ctx context.Context, userID primitive.ObjectID, values domain.MetricValues, notes string) (*domain.DailyMetric, error) {
	return s.metricRepo.UpsertForDay(ctx, userID, s.now().UTC(), values, notes)
}

// GetMetricHistory retrieves the charting window.
func (s *metricService) GetMetricHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.DailyMetric, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	return s.metricRepo.GetHistory(ctx, userID, since)
}

// EstimateCalories looks up the user's current weight and runs the MET
// estimate. An unknown user still gets an estimate on the default body
// weight rather than an error.
func (s *metricService) EstimateCalories(ctx context.Context, userID primitive.ObjectID, durationMinutes float64, intensity fitness.Intensity) (int, error) {
	bodyWeight := 0.0
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		bodyWeight = user.Weight
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}
	return fitness.EstimateCalories(durationMinutes, bodyWeight, intensity), nil
}
