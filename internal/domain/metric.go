package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood recorded alongside a daily metric entry.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
	MoodStressed  Mood = "stressed"
	MoodNeutral   Mood = "neutral"
)

// MetricValues holds the measurable fields of a daily entry. All fields are
// pointers so partial logging works: steps can be logged in the morning and
// weight in the evening, each update touching only the fields it carries.
type MetricValues struct {
	Weight         *float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Steps          *int     `bson:"steps,omitempty" json:"steps,omitempty"`
	SleepHours     *float64 `bson:"sleepHours,omitempty" json:"sleepHours,omitempty"`
	Mood           *Mood    `bson:"mood,omitempty" json:"mood,omitempty"`
	WaterIntake    *float64 `bson:"waterIntake,omitempty" json:"waterIntake,omitempty"` // liters
	CaloriesBurned *int     `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
}

// DailyMetric is the single metric document a user has per UTC day.
// Uniqueness of (userId, date) is enforced by an index; writes go through
// an atomic upsert rather than read-then-write.
type DailyMetric struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Date      time.Time          `bson:"date" json:"date"` // Truncated to UTC midnight
	Metrics   MetricValues       `bson:"metrics" json:"metrics"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
