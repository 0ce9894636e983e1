package fitness

import "alcyxob/fitmetric/internal/domain"

// exerciseCatalog is the static prescription table the plan composer draws
// from, keyed by fitness level and muscle group. Loaded once, read-only;
// no database round-trip is involved.
var exerciseCatalog = map[domain.FitnessLevel]map[domain.MuscleGroup][]domain.ExercisePrescription{
	domain.LevelBeginner: {
		domain.MuscleChest: {
			{Name: "Wall Push-ups", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleChest},
			{Name: "Knee Push-ups", Sets: 3, Reps: 8, MuscleGroup: domain.MuscleChest},
			{Name: "Incline Push-ups", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleChest},
		},
		domain.MuscleBack: {
			{Name: "Superman Hold", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleBack},
			{Name: "Prone Y Raises", Sets: 3, Reps: 12, MuscleGroup: domain.MuscleBack},
			{Name: "Bird Dog", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleBack},
		},
		domain.MuscleLegs: {
			{Name: "Bodyweight Squats", Sets: 3, Reps: 12, MuscleGroup: domain.MuscleLegs},
			{Name: "Wall Sit", Sets: 3, Duration: "30 sec", MuscleGroup: domain.MuscleLegs},
			{Name: "Glute Bridges", Sets: 3, Reps: 15, MuscleGroup: domain.MuscleLegs},
		},
		domain.MuscleCore: {
			{Name: "Dead Bug", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleCore},
			{Name: "Plank Hold", Sets: 3, Duration: "20 sec", MuscleGroup: domain.MuscleCore},
			{Name: "Crunches", Sets: 3, Reps: 15, MuscleGroup: domain.MuscleCore},
		},
		domain.MuscleCardio: {
			{Name: "Walking", Duration: "20 min", MuscleGroup: domain.MuscleCardio},
			{Name: "Marching in Place", Duration: "10 min", MuscleGroup: domain.MuscleCardio},
			{Name: "Step Touch", Duration: "10 min", MuscleGroup: domain.MuscleCardio},
		},
	},
	domain.LevelIntermediate: {
		domain.MuscleChest: {
			{Name: "Standard Push-ups", Sets: 4, Reps: 12, MuscleGroup: domain.MuscleChest},
			{Name: "Diamond Push-ups", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleChest},
			{Name: "Wide Push-ups", Sets: 3, Reps: 12, MuscleGroup: domain.MuscleChest},
		},
		domain.MuscleBack: {
			{Name: "Inverted Rows", Sets: 4, Reps: 10, MuscleGroup: domain.MuscleBack},
			{Name: "Reverse Snow Angels", Sets: 3, Reps: 12, MuscleGroup: domain.MuscleBack},
			{Name: "Back Extensions", Sets: 3, Reps: 15, MuscleGroup: domain.MuscleBack},
		},
		domain.MuscleLegs: {
			{Name: "Jump Squats", Sets: 4, Reps: 15, MuscleGroup: domain.MuscleLegs},
			{Name: "Lunges", Sets: 3, Reps: 12, MuscleGroup: domain.MuscleLegs},
			{Name: "Step-ups", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleLegs},
			{Name: "Calf Raises", Sets: 3, Reps: 20, MuscleGroup: domain.MuscleLegs},
		},
		domain.MuscleCore: {
			{Name: "Mountain Climbers", Sets: 3, Reps: 20, MuscleGroup: domain.MuscleCore},
			{Name: "Bicycle Crunches", Sets: 3, Reps: 20, MuscleGroup: domain.MuscleCore},
			{Name: "Plank Hold", Sets: 3, Duration: "45 sec", MuscleGroup: domain.MuscleCore},
			{Name: "Russian Twists", Sets: 3, Reps: 20, MuscleGroup: domain.MuscleCore},
		},
		domain.MuscleCardio: {
			{Name: "Jogging", Duration: "20 min", MuscleGroup: domain.MuscleCardio},
			{Name: "Jumping Jacks", Sets: 3, Duration: "1 min", MuscleGroup: domain.MuscleCardio},
			{Name: "High Knees", Sets: 3, Duration: "45 sec", MuscleGroup: domain.MuscleCardio},
		},
	},
	domain.LevelAdvanced: {
		domain.MuscleChest: {
			{Name: "Archer Push-ups", Sets: 4, Reps: 8, MuscleGroup: domain.MuscleChest},
			{Name: "Clap Push-ups", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleChest},
			{Name: "Pike Push-ups", Sets: 4, Reps: 10, MuscleGroup: domain.MuscleChest},
			{Name: "Decline Push-ups", Sets: 4, Reps: 12, MuscleGroup: domain.MuscleChest},
		},
		domain.MuscleBack: {
			{Name: "Pull-ups", Sets: 4, Reps: 8, MuscleGroup: domain.MuscleBack},
			{Name: "Chin-ups", Sets: 3, Reps: 8, MuscleGroup: domain.MuscleBack},
			{Name: "Inverted Rows (elevated)", Sets: 4, Reps: 12, MuscleGroup: domain.MuscleBack},
		},
		domain.MuscleLegs: {
			{Name: "Pistol Squats", Sets: 3, Reps: 6, MuscleGroup: domain.MuscleLegs},
			{Name: "Bulgarian Split Squats", Sets: 4, Reps: 10, MuscleGroup: domain.MuscleLegs},
			{Name: "Box Jumps", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleLegs},
			{Name: "Single Leg Deadlifts", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleLegs},
		},
		domain.MuscleCore: {
			{Name: "Dragon Flags", Sets: 3, Reps: 8, MuscleGroup: domain.MuscleCore},
			{Name: "L-Sit Hold", Sets: 3, Duration: "15 sec", MuscleGroup: domain.MuscleCore},
			{Name: "Hanging Leg Raises", Sets: 3, Reps: 12, MuscleGroup: domain.MuscleCore},
			{Name: "Ab Wheel Rollouts", Sets: 3, Reps: 10, MuscleGroup: domain.MuscleCore},
		},
		domain.MuscleCardio: {
			{Name: "Burpees", Sets: 4, Reps: 15, MuscleGroup: domain.MuscleCardio},
			{Name: "Sprint Intervals", Duration: "15 min", MuscleGroup: domain.MuscleCardio},
			{Name: "Jump Rope", Duration: "10 min", MuscleGroup: domain.MuscleCardio},
		},
	},
}

// ExercisesFor returns the catalog prescriptions for a fitness level and
// muscle group, in catalog order. An unknown pairing yields an empty slice,
// not an error; the composer skips such focus areas. The returned slice is
// a copy, so callers may modify it freely.
func ExercisesFor(level domain.FitnessLevel, group domain.MuscleGroup) []domain.ExercisePrescription {
	byGroup, ok := exerciseCatalog[level]
	if !ok {
		return nil
	}
	entries, ok := byGroup[group]
	if !ok {
		return nil
	}
	out := make([]domain.ExercisePrescription, len(entries))
	copy(out, entries)
	return out
}

// CatalogLevels returns the fitness levels covered by the catalog.
func CatalogLevels() []domain.FitnessLevel {
	return []domain.FitnessLevel{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}
}
