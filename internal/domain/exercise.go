package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseCategory classifies an exercise library entry by training effect.
type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "strength"
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryHypertrophy ExerciseCategory = "hypertrophy"
	CategoryEndurance   ExerciseCategory = "endurance"
	CategoryFlexibility ExerciseCategory = "flexibility"
)

// Exercise is a reference library entry (distinct from the static plan
// catalog): a named movement users can link their workout logs against.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"` // Unique
	MuscleGroup  MuscleGroup        `bson:"muscleGroup" json:"muscleGroup"`
	Category     ExerciseCategory   `bson:"category" json:"category"`
	Equipment    string             `bson:"equipment" json:"equipment"` // dumbbell, barbell, machine, bodyweight, none
	Difficulty   FitnessLevel       `bson:"difficulty" json:"difficulty"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
