// Package fitness is the deterministic core of FitMetric: the formula
// library, the static exercise catalog and weekly split tables, the plan
// composer, the workout analytics engine, and the fitness score heuristic.
// Everything here is a pure function over its inputs; persistence, caching
// and AI commentary are layered on top by the service layer.
package fitness

import "math"

// Intensity buckets for the calorie estimate.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// MET values for weight training by intensity.
const (
	metLow      = 3.5
	metModerate = 4.8
	metHigh     = 6.0
)

const defaultBodyWeightKg = 70

// EstimateOneRepMax returns the estimated one-rep max for a set using the
// Epley formula: weight * (1 + reps/30), rounded to the nearest integer.
// A single rep is an exact measurement, so it returns the weight unchanged.
// Missing or non-positive weight/reps mean no lift was performed and yield 0
// rather than an error, so partial log entries stay tolerated.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// SetVolume returns the volume load of a single set (weight * reps),
// or 0 when either operand is missing or non-positive.
func SetVolume(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return weight * float64(reps)
}

// EstimateCalories gives a rough MET-based calorie estimate for a session.
// Unrecognized intensities fall back to moderate; a missing body weight
// falls back to 70kg. Advisory only.
func EstimateCalories(durationMinutes float64, bodyWeightKg float64, intensity Intensity) int {
	met := metModerate
	switch intensity {
	case IntensityLow:
		met = metLow
	case IntensityHigh:
		met = metHigh
	}
	if bodyWeightKg <= 0 {
		bodyWeightKg = defaultBodyWeightKg
	}
	if durationMinutes <= 0 {
		return 0
	}
	return int(math.Round(met * bodyWeightKg * (durationMinutes / 60)))
}
