package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
	// ErrActivePlanExists is raised by the partial unique index on
	// (userId, status=active): at most one active plan per user,
	// guaranteed at the database level even under concurrent writes.
	ErrActivePlanExists = RepositoryError("an active plan already exists for this user")
	ErrUpdateFailed     = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// PlanRepository defines the interface for interacting with exercise plans.
type PlanRepository interface {
	// Create inserts a new plan. When the plan is active and the user
	// already has an active plan, it fails with ErrActivePlanExists.
	Create(ctx context.Context, plan *domain.ExercisePlan) (primitive.ObjectID, error)
	GetActiveByUser(ctx context.Context, userID primitive.ObjectID) (*domain.ExercisePlan, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExercisePlan, error)
	GetAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ExercisePlan, error)
	// UpdateStatus transitions a plan owned by userID to the given status.
	UpdateStatus(ctx context.Context, planID, userID primitive.ObjectID, status domain.PlanStatus) (*domain.ExercisePlan, error)
}

// WorkoutRepository defines the interface for interacting with workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	// GetRecentCompleted returns up to limit completed workouts for the
	// user, newest first, excluding the given workout ID.
	GetRecentCompleted(ctx context.Context, userID, exclude primitive.ObjectID, limit int64) ([]domain.Workout, error)
	GetByUserSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.Workout, error)
}

// MetricRepository defines the interface for daily metric documents.
type MetricRepository interface {
	// UpsertForDay atomically creates or updates the user's metric
	// document for the UTC day containing `at`, touching only the
	// provided fields.
	UpsertForDay(ctx context.Context, userID primitive.ObjectID, at time.Time, values domain.MetricValues, notes string) (*domain.DailyMetric, error)
	GetHistory(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.DailyMetric, error)
}

// ExerciseRepository defines the interface for the exercise reference library.
type ExerciseRepository interface {
	UpsertByName(ctx context.Context, exercise *domain.Exercise) error
	GetAll(ctx context.Context) ([]domain.Exercise, error)
}
