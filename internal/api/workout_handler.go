package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

type LogSetRequest struct {
	Weight    float64 `json:"weight" binding:"gte=0"`
	Reps      int     `json:"reps" binding:"gte=0"`
	RPE       *int    `json:"rpe" binding:"omitempty,gte=1,lte=10"`
	Completed bool    `json:"completed"`
}

type LogExerciseRequest struct {
	ExerciseID *string         `json:"exerciseId"`
	Name       string          `json:"name" binding:"required"`
	Sets       []LogSetRequest `json:"sets"`
	Notes      string          `json:"notes"`
}

type LogWorkoutRequest struct {
	Name            string               `json:"name"`
	Date            *time.Time           `json:"date"`
	DurationMinutes int                  `json:"durationMinutes" binding:"gte=0"`
	Status          domain.WorkoutStatus `json:"status" binding:"omitempty,oneof=in_progress completed planned"`
	Exercises       []LogExerciseRequest `json:"exercises"`
}

type FeedbackResponse struct {
	WorkoutID string `json:"workoutId"`
	Feedback  string `json:"feedback"`
}

// --- Handler Methods ---

// LogWorkout records a training session. Derived metrics are computed
// server-side; any values the client sends for them are ignored.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := mapWorkoutRequest(&req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.workoutService.LogWorkout(c.Request.Context(), userID, workout)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not save workout")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GetWorkouts lists the user's workouts, newest first.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	workouts, err := h.workoutService.GetUserWorkouts(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetFeedback returns AI coaching feedback for one workout.
func (h *WorkoutHandler) GetFeedback(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	feedback, err := h.workoutService.GetWorkoutFeedback(c.Request.Context(), userID, workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else if errors.Is(err, service.ErrWorkoutOwnership) {
			abortWithError(c, http.StatusForbidden, "Workout does not belong to this user")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not generate feedback")
		}
		return
	}
	c.JSON(http.StatusOK, FeedbackResponse{WorkoutID: workoutID.Hex(), Feedback: feedback})
}

// mapWorkoutRequest converts the wire format to the domain workout. Derived
// fields are left zero; the service recomputes them anyway.
func mapWorkoutRequest(req *LogWorkoutRequest) (*domain.Workout, error) {
	workout := &domain.Workout{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
	}
	if req.Date != nil {
		workout.Date = *req.Date
	}

	workout.Exercises = make([]domain.ExerciseLog, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		logEntry := domain.ExerciseLog{
			Name:  ex.Name,
			Notes: ex.Notes,
		}
		if ex.ExerciseID != nil && *ex.ExerciseID != "" {
			id, err := primitive.ObjectIDFromHex(*ex.ExerciseID)
			if err != nil {
				return nil, fmt.Errorf("invalid exercise ID %q", *ex.ExerciseID)
			}
			logEntry.ExerciseID = &id
		}
		logEntry.Sets = make([]domain.Set, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			logEntry.Sets = append(logEntry.Sets, domain.Set{
				Weight:    set.Weight,
				Reps:      set.Reps,
				RPE:       set.RPE,
				Completed: set.Completed,
			})
		}
		workout.Exercises = append(workout.Exercises, logEntry)
	}
	return workout, nil
}
