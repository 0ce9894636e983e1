package fitness

import (
	"math"

	"alcyxob/fitmetric/internal/domain"
)

// Fitness score model weights. These are the heuristic "knowledge" of the
// expert system: a linear model over
// [BMI, age, activity factor, pushups, self-assessed level].
const (
	scoreWeightBMI      = -0.4
	scoreWeightAge      = -0.15
	scoreWeightActivity = 8.0
	scoreWeightPushups  = 1.5
	scoreWeightLevel    = 5.0

	scoreBase       = 50.0
	scoreFemaleBias = -5.0

	scoreMin = 10
	scoreMax = 100
)

// ScoreInput carries the profile measurements the score model runs on.
type ScoreInput struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        domain.Gender
	ActivityLevel domain.ActivityLevel
	Pushups       int
	FitnessLevel  domain.FitnessLevel
}

// activityFactors uses the registration label set; the plan composer's
// short labels are intentionally not mapped here, mirroring the two
// separate call paths these tables grew out of.
var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.0,
	domain.ActivityLightlyActive:    1.2,
	domain.ActivityModeratelyActive: 1.4,
	domain.ActivityVeryActive:       1.6,
	domain.ActivityExtraActive:      1.8,
}

var levelFactors = map[domain.FitnessLevel]float64{
	domain.LevelBeginner:     1,
	domain.LevelIntermediate: 2,
	domain.LevelAdvanced:     3,
}

// PredictFitnessScore estimates a 0-100 fitness score from profile
// measurements. Missing height or weight contribute a BMI of 0 rather than
// erroring; unknown activity or level labels fall back to the lowest
// factor. The result is clamped to [10, 100] and rounded.
func PredictFitnessScore(in ScoreInput) int {
	bmi := 0.0
	if in.HeightCm > 0 && in.WeightKg > 0 {
		meters := in.HeightCm / 100
		bmi = in.WeightKg / (meters * meters)
	}

	activity, ok := activityFactors[in.ActivityLevel]
	if !ok {
		activity = 1
	}
	level, ok := levelFactors[in.FitnessLevel]
	if !ok {
		level = 1
	}

	base := scoreBase
	if in.Gender == domain.GenderFemale {
		base += scoreFemaleBias
	}

	score := base +
		scoreWeightBMI*bmi +
		scoreWeightAge*float64(in.Age) +
		scoreWeightActivity*activity +
		scoreWeightPushups*float64(in.Pushups) +
		scoreWeightLevel*level

	if score < scoreMin {
		score = scoreMin
	}
	if score > scoreMax {
		score = scoreMax
	}
	return int(math.Round(score))
}
