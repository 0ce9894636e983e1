package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus tracks the state of a logged session.
type WorkoutStatus string

const (
	WorkoutInProgress WorkoutStatus = "in_progress"
	WorkoutCompleted  WorkoutStatus = "completed"
	WorkoutPlanned    WorkoutStatus = "planned"
)

// Set is a single weight x reps entry inside an exercise log.
// Estimated1RM is always recomputed from (Weight, Reps) before persistence;
// it is never accepted from callers.
type Set struct {
	Weight       float64 `bson:"weight" json:"weight"` // kg
	Reps         int     `bson:"reps" json:"reps"`
	RPE          *int    `bson:"rpe,omitempty" json:"rpe,omitempty"` // Rate of Perceived Exertion, 1-10
	Completed    bool    `bson:"completed" json:"completed"`
	Estimated1RM float64 `bson:"estimated1RM" json:"estimated1RM"` // Derived
}

// ExerciseLog groups the sets performed for one exercise within a workout.
type ExerciseLog struct {
	ExerciseID *primitive.ObjectID `bson:"exerciseId,omitempty" json:"exerciseId,omitempty"` // Link to the exercise library
	Name       string              `bson:"name" json:"name"`                                 // Backup name if the link is absent
	Sets       []Set               `bson:"sets" json:"sets"`
	BestSet1RM float64             `bson:"bestSet1RM" json:"bestSet1RM"` // Derived
	Volume     float64             `bson:"volume" json:"volume"`         // Derived
	Notes      string              `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Workout is a single training session owned by one user. The derived
// fields (per-set 1RM, per-exercise volume and best set, total volume) are
// recomputed from scratch on every save so edits can never leave them stale.
type Workout struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Name            string             `bson:"name" json:"name"`
	Date            time.Time          `bson:"date" json:"date"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Exercises       []ExerciseLog      `bson:"exercises" json:"exercises"`
	TotalVolume     float64            `bson:"totalVolume" json:"totalVolume"` // Derived
	Status          WorkoutStatus      `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
