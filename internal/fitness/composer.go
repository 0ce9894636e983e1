package fitness

import (
	"fmt"
	"strings"
	"time"

	"alcyxob/fitmetric/internal/domain"
)

// Fitness score thresholds for level resolution.
const (
	scoreIntermediateFloor = 40
	scoreAdvancedFloor     = 70
	defaultFitnessScore    = 50
)

// Plan duration in weeks by goal.
const (
	durationWeightLoss = 8
	durationMuscleGain = 12
	durationDefault    = 4
)

const defaultRestTime = "60 sec"

// Profile is the slice of a user's profile the composer consumes.
// FitnessScore 0 means "not assessed" (the predictor never emits 0);
// FitnessLevel, when set to a known level, overrides score resolution.
type Profile struct {
	FitnessScore  int
	FitnessLevel  domain.FitnessLevel
	Goal          domain.Goal
	ActivityLevel domain.ActivityLevel
}

var levelLabels = map[domain.FitnessLevel]string{
	domain.LevelBeginner:     "Starter",
	domain.LevelIntermediate: "Builder",
	domain.LevelAdvanced:     "Elite",
}

var goalLabels = map[domain.Goal]string{
	domain.GoalWeightLoss:     "Fat Burn",
	domain.GoalMuscleGain:     "Muscle Builder",
	domain.GoalGeneralFitness: "Fitness",
	domain.GoalEndurance:      "Endurance",
}

// ComposePlan assembles a complete multi-week exercise plan from a profile.
// It is a pure function: the start date is injected, no existing plans are
// consulted (the at-most-one-active-plan rule belongs to the persistence
// layer), and the only possible failure is an unsupported schedule.
func ComposePlan(profile Profile, startDate time.Time) (*domain.ExercisePlan, error) {
	level := resolveFitnessLevel(profile)
	daysPerWeek := resolveDaysPerWeek(profile.ActivityLevel)

	template, err := SplitFor(daysPerWeek)
	if err != nil {
		return nil, err
	}

	weeklyPlan := make([]domain.DayPlan, 0, len(template))
	for _, day := range template {
		if day.IsRestDay {
			weeklyPlan = append(weeklyPlan, domain.DayPlan{
				Day:       day.Day,
				DayName:   day.DayName,
				IsRestDay: true,
				Exercises: []domain.ExercisePrescription{},
			})
			continue
		}
		weeklyPlan = append(weeklyPlan, domain.DayPlan{
			Day:       day.Day,
			DayName:   day.DayName,
			Exercises: exercisesForFocus(level, day.Focus, profile.Goal),
		})
	}

	durationWeeks := resolveDurationWeeks(profile.Goal)

	plan := &domain.ExercisePlan{
		PlanName:      planName(level, profile.Goal),
		Description:   planDescription(durationWeeks, level, profile.Goal),
		FitnessLevel:  level,
		Goal:          profile.Goal,
		DurationWeeks: durationWeeks,
		DaysPerWeek:   daysPerWeek,
		WeeklyPlan:    weeklyPlan,
		StartDate:     startDate,
		Status:        domain.PlanStatusActive,
	}
	plan.DeriveEndDate()
	return plan, nil
}

// resolveFitnessLevel uses the profile's explicit level when it is one of
// the known levels, otherwise derives it from the fitness score:
// <40 beginner, 40-69 intermediate, 70+ advanced. A missing score counts
// as the default 50.
func resolveFitnessLevel(profile Profile) domain.FitnessLevel {
	switch profile.FitnessLevel {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
		return profile.FitnessLevel
	}
	score := profile.FitnessScore
	if score == 0 {
		score = defaultFitnessScore
	}
	switch {
	case score < scoreIntermediateFloor:
		return domain.LevelBeginner
	case score < scoreAdvancedFloor:
		return domain.LevelIntermediate
	default:
		return domain.LevelAdvanced
	}
}

// resolveDaysPerWeek maps an activity level onto training days. Both the
// registration labels and the short plan-generation labels are accepted;
// anything unrecognized (including extra_active, which only the
// registration flow emits) falls back to 3 days.
func resolveDaysPerWeek(activity domain.ActivityLevel) int {
	switch activity {
	case domain.ActivitySedentary:
		return 3
	case domain.ActivityLightlyActive, domain.ActivityLight:
		return 3
	case domain.ActivityModeratelyActive, domain.ActivityModerate:
		return 4
	case domain.ActivityVeryActive, domain.ActivityActive:
		return 5
	default:
		return 3
	}
}

func resolveDurationWeeks(goal domain.Goal) int {
	switch goal {
	case domain.GoalWeightLoss:
		return durationWeightLoss
	case domain.GoalMuscleGain:
		return durationMuscleGain
	default:
		return durationDefault
	}
}

// exercisesForFocus pulls exercises from the catalog for each focus group
// in declared order: the first 3 entries per group for muscle gain, the
// first 2 otherwise. For weight loss a single cardio entry is appended
// when cardio is not already one of the day's focus groups. Focus groups
// missing from the catalog are skipped.
func exercisesForFocus(level domain.FitnessLevel, focus []domain.MuscleGroup, goal domain.Goal) []domain.ExercisePrescription {
	perGroup := 2
	if goal == domain.GoalMuscleGain {
		perGroup = 3
	}

	exercises := make([]domain.ExercisePrescription, 0, perGroup*len(focus))
	hasCardioFocus := false
	for _, group := range focus {
		if group == domain.MuscleCardio {
			hasCardioFocus = true
		}
		entries := ExercisesFor(level, group)
		if len(entries) > perGroup {
			entries = entries[:perGroup]
		}
		exercises = append(exercises, entries...)
	}

	if goal == domain.GoalWeightLoss && !hasCardioFocus {
		if cardio := ExercisesFor(level, domain.MuscleCardio); len(cardio) > 0 {
			exercises = append(exercises, cardio[0])
		}
	}

	for i := range exercises {
		if exercises[i].RestTime == "" {
			exercises[i].RestTime = defaultRestTime
		}
	}
	return exercises
}

// planName renders "{LevelLabel} {GoalLabel} Plan". Goals without a label
// (strength, maintenance) borrow the general fitness label instead of
// rendering a hole in the name.
func planName(level domain.FitnessLevel, goal domain.Goal) string {
	goalLabel, ok := goalLabels[goal]
	if !ok {
		goalLabel = goalLabels[domain.GoalGeneralFitness]
	}
	return fmt.Sprintf("%s %s Plan", levelLabels[level], goalLabel)
}

func planDescription(durationWeeks int, level domain.FitnessLevel, goal domain.Goal) string {
	return fmt.Sprintf("A %d-week %s plan designed for %s.",
		durationWeeks, level, strings.ReplaceAll(string(goal), "_", " "))
}
