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

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrUserNotFound = errors.New("user not found")
)

// --- Service Interface ---
type PlanService interface {
	// GeneratePlan returns the user's active plan, composing and persisting
	// a new one only when none exists. Calling it twice never produces two
	// active plans.
	GeneratePlan(ctx context.Context, userID primitive.ObjectID) (*domain.ExercisePlan, error)
	GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*domain.ExercisePlan, error)
	GetPlanHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.ExercisePlan, error)
	CompletePlan(ctx context.Context, planID, userID primitive.ObjectID) (*domain.ExercisePlan, error)
}

// --- Service Implementation ---

type planService struct {
	planRepo repository.PlanRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.PlanRepository, userRepo repository.UserRepository) PlanService {
	return &planService{
		planRepo: planRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GeneratePlan is idempotent per user: an existing active plan is returned
// untouched. When two requests race past the existence check, the partial
// unique index makes one Create fail with ErrActivePlanExists and that
// request re-fetches the winner's plan instead of erroring out.
func (s *planService) GeneratePlan(ctx context.Context, userID primitive.ObjectID) (*domain.ExercisePlan, error) {
	existing, err := s.planRepo.GetActiveByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	plan, err := fitness.ComposePlan(fitness.Profile{
		FitnessScore:  user.FitnessScore,
		FitnessLevel:  user.FitnessLevel,
		Goal:          user.Goal,
		ActivityLevel: user.ActivityLevel,
	}, s.now().UTC())
	if err != nil {
		return nil, err
	}
	plan.UserID = userID

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		if errors.Is(err, repository.ErrActivePlanExists) {
			// Lost the race; hand back the plan that won.
			return s.planRepo.GetActiveByUser(ctx, userID)
		}
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

// GetCurrentPlan retrieves the user's single active plan.
func (s *planService) GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*domain.ExercisePlan, error) {
	plan, err := s.planRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// GetPlanHistory retrieves every plan the user ever had, newest first.
func (s *planService) GetPlanHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.ExercisePlan, error) {
	return s.planRepo.GetAllByUser(ctx, userID)
}

// CompletePlan transitions the user's plan to completed. Plans are kept as
// history, never deleted, and completing frees the active slot for the next
// GeneratePlan call.
func (s *planService) CompletePlan(ctx context.Context, planID, userID primitive.ObjectID) (*domain.ExercisePlan, error) {
	plan, err := s.planRepo.UpdateStatus(ctx, planID, userID, domain.PlanStatusCompleted)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}
