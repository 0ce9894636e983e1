package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is what the user wants to get out of training.
type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalGeneralFitness Goal = "general_fitness"
	GoalEndurance      Goal = "endurance"
	GoalStrength       Goal = "strength"
	GoalMaintenance    Goal = "maintenance"
)

// FitnessLevel classifies overall training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// ActivityLevel describes day-to-day activity outside the gym.
// Two label sets are in circulation: the long registration labels
// (lightly_active, moderately_active, ...) and the short plan-generation
// labels (light, moderate, active). Both are accepted wherever an
// ActivityLevel is consumed.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityLight            ActivityLevel = "light"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityModerate         ActivityLevel = "moderate"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityActive           ActivityLevel = "active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// Gender of the user, used by the fitness score heuristic.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Location of the user, captured at registration.
type Location struct {
	Country  string `bson:"country" json:"country"`
	State    string `bson:"state" json:"state"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	Town     string `bson:"town,omitempty" json:"town,omitempty"`
}

// User is a registered FitMetric member together with the profile data
// the plan composer and fitness score heuristic run on.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Unique
	PasswordHash string             `bson:"passwordHash" json:"-"`

	Gender        Gender        `bson:"gender" json:"gender"`
	Age           int           `bson:"age" json:"age"`
	Location      Location      `bson:"location" json:"location"`
	Goal          Goal          `bson:"goal" json:"goal"`
	FitnessLevel  FitnessLevel  `bson:"fitnessLevel" json:"fitnessLevel"`
	ActivityLevel ActivityLevel `bson:"activityLevel" json:"activityLevel"`
	Weight        float64       `bson:"weight,omitempty" json:"weight,omitempty"` // Current weight in kg
	Height        float64       `bson:"height,omitempty" json:"height,omitempty"` // Height in cm
	Pushups       int           `bson:"pushups" json:"pushups"`                   // Max consecutive pushups

	// FitnessScore (0-100) is predicted at registration and drives
	// fitness level resolution during plan generation.
	FitnessScore int `bson:"fitnessScore,omitempty" json:"fitnessScore,omitempty"`

	// OnboardingNote is the AI generated welcome message. Best effort.
	OnboardingNote string `bson:"onboardingNote,omitempty" json:"onboardingNote,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
