package service

import (
	"context"
	"fmt"
	"time"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/repository"

	"github.com/patrickmn/go-cache"
)

const (
	exerciseListCacheKey = "all_exercises"
	exerciseListCacheTTL = 24 * time.Hour
)

// --- Service Interface ---
type ExerciseService interface {
	GetAllExercises(ctx context.Context) ([]domain.Exercise, error)
	// SeedDefaults upserts the built-in exercise library. Safe to run on
	// every startup.
	SeedDefaults(ctx context.Context) error
}

// --- Service Implementation ---

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	cache        *cache.Cache
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, c *cache.Cache) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		cache:        c,
	}
}

// GetAllExercises returns the reference library. The list changes only when
// the seed data does, so it is cached aggressively.
func (s *exerciseService) GetAllExercises(ctx context.Context) ([]domain.Exercise, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(exerciseListCacheKey); found {
			return cached.([]domain.Exercise), nil
		}
	}

	exercises, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(exerciseListCacheKey, exercises, exerciseListCacheTTL)
	}
	return exercises, nil
}

// SeedDefaults writes the built-in library entries, keyed by name.
func (s *exerciseService) SeedDefaults(ctx context.Context) error {
	for i := range seedExercises {
		if err := s.exerciseRepo.UpsertByName(ctx, &seedExercises[i]); err != nil {
			return fmt.Errorf("seed exercise %q: %w", seedExercises[i].Name, err)
		}
	}
	if s.cache != nil {
		s.cache.Delete(exerciseListCacheKey)
	}
	return nil
}

// seedExercises is the built-in reference library shipped with the app.
var seedExercises = []domain.Exercise{
	{
		Name:         "Bench Press",
		MuscleGroup:  domain.MuscleChest,
		Category:     domain.CategoryStrength,
		Equipment:    "barbell",
		Difficulty:   domain.LevelIntermediate,
		Instructions: "Lie on a flat bench, lower the bar to your chest and press it back up.",
	},
	{
		Name:         "Squat",
		MuscleGroup:  domain.MuscleLegs,
		Category:     domain.CategoryStrength,
		Equipment:    "barbell",
		Difficulty:   domain.LevelIntermediate,
		Instructions: "Stand with the bar on your upper back, squat down until thighs are parallel, drive back up.",
	},
	{
		Name:         "Deadlift",
		MuscleGroup:  domain.MuscleBack,
		Category:     domain.CategoryStrength,
		Equipment:    "barbell",
		Difficulty:   domain.LevelAdvanced,
		Instructions: "Hinge at the hips, grip the bar and stand up tall keeping a neutral spine.",
	},
	{
		Name:         "Overhead Press",
		MuscleGroup:  domain.MuscleShoulders,
		Category:     domain.CategoryStrength,
		Equipment:    "barbell",
		Difficulty:   domain.LevelIntermediate,
		Instructions: "Press the bar from your shoulders straight overhead, lock out and lower under control.",
	},
	{
		Name:         "Pull-ups",
		MuscleGroup:  domain.MuscleBack,
		Category:     domain.CategoryStrength,
		Equipment:    "pull-up bar",
		Difficulty:   domain.LevelIntermediate,
		Instructions: "Hang from the bar and pull your chin above it, then lower fully.",
	},
	{
		Name:         "Push-ups",
		MuscleGroup:  domain.MuscleChest,
		Category:     domain.CategoryStrength,
		Equipment:    "bodyweight",
		Difficulty:   domain.LevelBeginner,
		Instructions: "Keep a straight body line, lower your chest to the floor and press back up.",
	},
	{
		Name:         "Plank",
		MuscleGroup:  domain.MuscleCore,
		Category:     domain.CategoryStrength,
		Equipment:    "bodyweight",
		Difficulty:   domain.LevelBeginner,
		Instructions: "Hold a straight line from head to heels on your forearms.",
	},
	{
		Name:         "Running",
		MuscleGroup:  domain.MuscleCardio,
		Category:     domain.CategoryCardio,
		Equipment:    "none",
		Difficulty:   domain.LevelBeginner,
		Instructions: "Run at a steady conversational pace.",
	},
	{
		Name:         "Bicep Curls",
		MuscleGroup:  domain.MuscleArms,
		Category:     domain.CategoryStrength,
		Equipment:    "dumbbells",
		Difficulty:   domain.LevelBeginner,
		Instructions: "Curl the dumbbells up without swinging, lower slowly.",
	},
}
