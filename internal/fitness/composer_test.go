package fitness

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"alcyxob/fitmetric/internal/domain"
)

func TestComposePlanBeginnerWeightLoss(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan, err := ComposePlan(Profile{
		FitnessScore:  30,
		Goal:          domain.GoalWeightLoss,
		ActivityLevel: domain.ActivitySedentary,
	}, start)
	if err != nil {
		t.Fatalf("ComposePlan returned error: %v", err)
	}

	if plan.FitnessLevel != domain.LevelBeginner {
		t.Errorf("fitness level = %s, want beginner", plan.FitnessLevel)
	}
	if plan.DaysPerWeek != 3 {
		t.Errorf("days per week = %d, want 3", plan.DaysPerWeek)
	}
	if plan.DurationWeeks != 8 {
		t.Errorf("duration weeks = %d, want 8", plan.DurationWeeks)
	}
	if plan.PlanName != "Starter Fat Burn Plan" {
		t.Errorf("plan name = %q, want %q", plan.PlanName, "Starter Fat Burn Plan")
	}
	if want := "A 8-week beginner plan designed for weight loss."; plan.Description != want {
		t.Errorf("description = %q, want %q", plan.Description, want)
	}
	if plan.Status != domain.PlanStatusActive {
		t.Errorf("status = %s, want active", plan.Status)
	}
	if want := start.AddDate(0, 0, 8*7); !plan.EndDate.Equal(want) {
		t.Errorf("end date = %v, want %v", plan.EndDate, want)
	}
	if len(plan.WeeklyPlan) != 7 {
		t.Fatalf("weekly plan has %d days, want 7", len(plan.WeeklyPlan))
	}

	// Rest day invariant: rest days empty, training days non-empty.
	for _, day := range plan.WeeklyPlan {
		if day.IsRestDay && len(day.Exercises) != 0 {
			t.Errorf("rest day %s has %d exercises", day.DayName, len(day.Exercises))
		}
		if !day.IsRestDay && len(day.Exercises) == 0 {
			t.Errorf("training day %s has no exercises", day.DayName)
		}
	}

	// Monday (chest+core, no cardio focus): 2 per group plus the
	// weight-loss cardio append.
	monday := plan.WeeklyPlan[0]
	wantMonday := []domain.ExercisePrescription{
		{Name: "Wall Push-ups", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleChest, RestTime: "60 sec"},
		{Name: "Knee Push-ups", Sets: 3, Reps: 8, MuscleGroup: domain.MuscleChest, RestTime: "60 sec"},
		{Name: "Dead Bug", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleCore, RestTime: "60 sec"},
		{Name: "Plank Hold", Sets: 3, Duration: "20 sec", MuscleGroup: domain.MuscleCore, RestTime: "60 sec"},
		{Name: "Walking", Duration: "20 min", MuscleGroup: domain.MuscleCardio, RestTime: "60 sec"},
	}
	if diff := cmp.Diff(wantMonday, monday.Exercises); diff != "" {
		t.Errorf("Monday exercises mismatch (-want +got):\n%s", diff)
	}

	// Friday already has cardio in focus, so no extra cardio is appended.
	friday := plan.WeeklyPlan[4]
	cardioCount := 0
	for _, e := range friday.Exercises {
		if e.MuscleGroup == domain.MuscleCardio {
			cardioCount++
		}
	}
	if cardioCount != 2 {
		t.Errorf("Friday cardio entries = %d, want the 2 from the focus group only", cardioCount)
	}
}

func TestComposePlanMuscleGainTakesThreePerGroup(t *testing.T) {
	plan, err := ComposePlan(Profile{
		FitnessLevel:  domain.LevelAdvanced,
		Goal:          domain.GoalMuscleGain,
		ActivityLevel: domain.ActivityVeryActive,
	}, time.Now())
	if err != nil {
		t.Fatalf("ComposePlan returned error: %v", err)
	}

	if plan.DaysPerWeek != 5 {
		t.Errorf("days per week = %d, want 5", plan.DaysPerWeek)
	}
	if plan.DurationWeeks != 12 {
		t.Errorf("duration weeks = %d, want 12", plan.DurationWeeks)
	}
	if plan.PlanName != "Elite Muscle Builder Plan" {
		t.Errorf("plan name = %q", plan.PlanName)
	}

	// Monday in the 5-day split focuses chest alone: 3 entries for muscle gain.
	monday := plan.WeeklyPlan[0]
	if len(monday.Exercises) != 3 {
		t.Errorf("Monday exercises = %d, want 3", len(monday.Exercises))
	}
}

func TestComposePlanLevelResolution(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    domain.FitnessLevel
	}{
		{name: "explicit level wins", profile: Profile{FitnessScore: 95, FitnessLevel: domain.LevelBeginner}, want: domain.LevelBeginner},
		{name: "score below 40", profile: Profile{FitnessScore: 39}, want: domain.LevelBeginner},
		{name: "score at 40", profile: Profile{FitnessScore: 40}, want: domain.LevelIntermediate},
		{name: "score at 69", profile: Profile{FitnessScore: 69}, want: domain.LevelIntermediate},
		{name: "score at 70", profile: Profile{FitnessScore: 70}, want: domain.LevelAdvanced},
		{name: "missing score defaults to 50", profile: Profile{}, want: domain.LevelIntermediate},
		{name: "unknown level falls back to score", profile: Profile{FitnessLevel: "ninja", FitnessScore: 80}, want: domain.LevelAdvanced},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.profile.Goal = domain.GoalGeneralFitness
			plan, err := ComposePlan(tc.profile, time.Now())
			if err != nil {
				t.Fatalf("ComposePlan returned error: %v", err)
			}
			if plan.FitnessLevel != tc.want {
				t.Errorf("fitness level = %s, want %s", plan.FitnessLevel, tc.want)
			}
		})
	}
}

func TestComposePlanActivityMapping(t *testing.T) {
	tests := []struct {
		activity domain.ActivityLevel
		want     int
	}{
		{domain.ActivitySedentary, 3},
		{domain.ActivityLightlyActive, 3},
		{domain.ActivityLight, 3},
		{domain.ActivityModeratelyActive, 4},
		{domain.ActivityModerate, 4},
		{domain.ActivityVeryActive, 5},
		{domain.ActivityActive, 5},
		// extra_active only exists on the registration enum; plan
		// generation has never known it and defaults to 3.
		{domain.ActivityExtraActive, 3},
		{"couch_potato", 3},
		{"", 3},
	}

	for _, tc := range tests {
		plan, err := ComposePlan(Profile{Goal: domain.GoalGeneralFitness, ActivityLevel: tc.activity}, time.Now())
		if err != nil {
			t.Fatalf("ComposePlan(%q) returned error: %v", tc.activity, err)
		}
		if plan.DaysPerWeek != tc.want {
			t.Errorf("activity %q: days per week = %d, want %d", tc.activity, plan.DaysPerWeek, tc.want)
		}
	}
}

func TestComposePlanUnmappedGoalGetsDefaults(t *testing.T) {
	plan, err := ComposePlan(Profile{
		FitnessLevel:  domain.LevelIntermediate,
		Goal:          domain.GoalStrength,
		ActivityLevel: domain.ActivityModerate,
	}, time.Now())
	if err != nil {
		t.Fatalf("ComposePlan returned error: %v", err)
	}
	if plan.DurationWeeks != 4 {
		t.Errorf("duration weeks = %d, want the 4-week default", plan.DurationWeeks)
	}
	if plan.PlanName != "Builder Fitness Plan" {
		t.Errorf("plan name = %q, want fallback to the Fitness label", plan.PlanName)
	}
}
