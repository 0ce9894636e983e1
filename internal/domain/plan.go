package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MuscleGroup identifies which part of the body an exercise targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
	MuscleCardio    MuscleGroup = "cardio"
	MuscleFullBody  MuscleGroup = "full_body"
)

// PlanStatus tracks the lifecycle of an exercise plan. Plans are never
// hard-deleted; they move to completed or paused and stay around as history.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusPaused    PlanStatus = "paused"
)

// ExercisePrescription is a single catalog entry placed on a day plan.
// Either (Sets, Reps) or Duration is populated, never both meaningfully.
type ExercisePrescription struct {
	Name        string      `bson:"name" json:"name"`
	MuscleGroup MuscleGroup `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`
	Sets        int         `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps        int         `bson:"reps,omitempty" json:"reps,omitempty"`
	Duration    string      `bson:"duration,omitempty" json:"duration,omitempty"` // e.g. "30 sec", "20 min"
	RestTime    string      `bson:"restTime,omitempty" json:"restTime,omitempty"`
}

// DayPlan is one of the seven days making up a weekly plan.
// Rest days carry no exercises; training days always carry at least one.
type DayPlan struct {
	Day       int                    `bson:"day" json:"day"` // 1-7
	DayName   string                 `bson:"dayName" json:"dayName"`
	IsRestDay bool                   `bson:"isRestDay" json:"isRestDay"`
	Exercises []ExercisePrescription `bson:"exercises" json:"exercises"`
}

// ExercisePlan is a generated multi-week training schedule for a user.
// At most one plan per user is active at any time; the plan collection
// enforces this with a partial unique index.
type ExercisePlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	PlanName      string             `bson:"planName" json:"planName"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	FitnessLevel  FitnessLevel       `bson:"fitnessLevel" json:"fitnessLevel"`
	Goal          Goal               `bson:"goal" json:"goal"`
	DurationWeeks int                `bson:"durationWeeks" json:"durationWeeks"`
	DaysPerWeek   int                `bson:"daysPerWeek" json:"daysPerWeek"`
	WeeklyPlan    []DayPlan          `bson:"weeklyPlan" json:"weeklyPlan"` // Always 7 entries
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	EndDate       time.Time          `bson:"endDate" json:"endDate"` // Derived, never set by callers
	Status        PlanStatus         `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DeriveEndDate recomputes EndDate from StartDate and DurationWeeks.
// Must be called whenever either input changes.
func (p *ExercisePlan) DeriveEndDate() {
	p.EndDate = p.StartDate.AddDate(0, 0, p.DurationWeeks*7)
}
