package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/fitness"
	"alcyxob/fitmetric/internal/insight"
	"alcyxob/fitmetric/internal/repository"

	"github.com/patrickmn/go-cache"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrWorkoutOwnership = errors.New("workout does not belong to this user")
)

const (
	fallbackFeedback            = "Great workout! Keep pushing your limits!"
	fallbackFeedbackUnavailable = "Great workout! AI feedback is temporarily unavailable, but keep pushing limits!"

	feedbackCacheTTL   = 10 * time.Minute
	feedbackHistoryLen = 5
)

// --- Service Interface ---
type WorkoutService interface {
	// LogWorkout persists a session after recomputing every derived field
	// from the raw sets. Caller-supplied derived values are discarded.
	LogWorkout(ctx context.Context, userID primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error)
	GetUserWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	// GetWorkoutFeedback returns AI commentary on a workout, grounded in the
	// user's recent history. Cached; falls back to canned text when the AI
	// backend is unavailable.
	GetWorkoutFeedback(ctx context.Context, userID, workoutID primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	generator   insight.Generator
	n8n         *insight.N8NClient
	cache       *cache.Cache
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, generator insight.Generator, n8n *insight.N8NClient, c *cache.Cache) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		generator:   generator,
		n8n:         n8n,
		cache:       c,
		now:         time.Now,
	}
}

// LogWorkout applies defaults, recomputes the derived metrics and persists
// the session. The analytics pass runs unconditionally so stale or bogus
// derived values coming in over the wire never reach the database.
func (s *workoutService) LogWorkout(ctx context.Context, userID primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error) {
	workout.UserID = userID
	if workout.Name == "" {
		workout.Name = "Untitled Workout"
	}
	if workout.Date.IsZero() {
		workout.Date = s.now().UTC()
	}
	if workout.Status == "" {
		workout.Status = domain.WorkoutCompleted
	}

	fitness.ComputeDerivedFields(workout)

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID

	if s.n8n != nil && workout.Status == domain.WorkoutCompleted {
		if err := s.n8n.SendWorkoutSummary(ctx, userID.Hex(), workout.Name, workout.TotalVolume); err != nil {
			log.Printf("WARN: n8n workout summary failed: %v", err)
		}
	}
	return workout, nil
}

// GetUserWorkouts retrieves all workouts for a user, newest first.
func (s *workoutService) GetUserWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUser(ctx, userID)
}

// GetWorkoutFeedback builds a prompt from the workout plus the user's last
// few completed sessions and asks the AI for coaching notes. Responses are
// cached per workout so repeated taps on the same card stay cheap.
func (s *workoutService) GetWorkoutFeedback(ctx context.Context, userID, workoutID primitive.ObjectID) (string, error) {
	cacheKey := "feedback_" + workoutID.Hex()
	if s.cache != nil {
		if cached, found := s.cache.Get(cacheKey); found {
			return cached.(string), nil
		}
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrWorkoutNotFound
		}
		return "", err
	}
	if workout.UserID != userID {
		return "", ErrWorkoutOwnership
	}

	history, err := s.workoutRepo.GetRecentCompleted(ctx, userID, workoutID, feedbackHistoryLen)
	if err != nil {
		log.Printf("WARN: could not load workout history for feedback: %v", err)
		history = nil
	}

	feedback, err := s.generator.GenerateText(ctx, feedbackPrompt(workout, history))
	if err != nil {
		if errors.Is(err, insight.ErrUnavailable) {
			return fallbackFeedbackUnavailable, nil
		}
		log.Printf("WARN: workout feedback generation failed: %v", err)
		return fallbackFeedback, nil
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, feedback, feedbackCacheTTL)
	}
	return feedback, nil
}

// feedbackPrompt renders the workout and recent history into the coaching
// prompt. History lines are compact on purpose; the model does not need the
// full set breakdown of old sessions.
func feedbackPrompt(workout *domain.Workout, history []domain.Workout) string {
	var b strings.Builder
	b.WriteString("Act as an experienced strength coach reviewing a client's training log.\n\n")
	b.WriteString(fmt.Sprintf("Latest session: %q on %s, total volume %.0fkg.\n",
		workout.Name, workout.Date.Format("2006-01-02"), workout.TotalVolume))
	for _, ex := range workout.Exercises {
		b.WriteString(fmt.Sprintf("- %s: %d sets, volume %.0fkg, best set est. 1RM %.0fkg\n",
			ex.Name, len(ex.Sets), ex.Volume, ex.BestSet1RM))
	}

	if len(history) > 0 {
		b.WriteString("\nRecent sessions for context:\n")
		for _, past := range history {
			b.WriteString(fmt.Sprintf("- %s (%s): volume %.0fkg\n",
				past.Name, past.Date.Format("2006-01-02"), past.TotalVolume))
		}
	}

	b.WriteString("\nGive 2-3 sentences of specific, encouraging feedback on this session and the trend. No emojis.")
	return b.String()
}
