package fitness

import "alcyxob/fitmetric/internal/domain"

// ComputeDerivedFields recomputes every derived number on a workout from
// the raw (weight, reps) pairs of its sets: per-set estimated 1RM,
// per-exercise volume and best-set 1RM, and the workout's total volume.
// It recomputes from scratch on every call with no dependency on prior
// stored values, so sets can be added, edited or removed without leaving
// stale numbers behind. The save path must run it exactly once before
// persisting; reads never re-derive.
func ComputeDerivedFields(w *domain.Workout) {
	totalVolume := 0.0

	for i := range w.Exercises {
		exercise := &w.Exercises[i]

		exerciseVolume := 0.0
		best1RM := 0.0
		for j := range exercise.Sets {
			set := &exercise.Sets[j]
			set.Estimated1RM = EstimateOneRepMax(set.Weight, set.Reps)
			if set.Estimated1RM > best1RM {
				best1RM = set.Estimated1RM
			}
			exerciseVolume += SetVolume(set.Weight, set.Reps)
		}

		exercise.Volume = exerciseVolume
		exercise.BestSet1RM = best1RM
		totalVolume += exerciseVolume
	}

	w.TotalVolume = totalVolume
}
