package fitness

import "testing"

func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{name: "single rep is exact", weight: 100, reps: 1, want: 100},
		{name: "single rep light weight", weight: 42.5, reps: 1, want: 42.5},
		{name: "epley 100x10", weight: 100, reps: 10, want: 133},
		{name: "epley 80x5", weight: 80, reps: 5, want: 93},
		{name: "epley 110x3", weight: 110, reps: 3, want: 121},
		{name: "zero weight", weight: 0, reps: 5, want: 0},
		{name: "zero reps", weight: 100, reps: 0, want: 0},
		{name: "negative weight", weight: -50, reps: 5, want: 0},
		{name: "negative reps", weight: 100, reps: -2, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateOneRepMax(tc.weight, tc.reps); got != tc.want {
				t.Errorf("EstimateOneRepMax(%v, %d) = %v, want %v", tc.weight, tc.reps, got, tc.want)
			}
		})
	}
}

func TestSetVolume(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{name: "basic", weight: 80, reps: 5, want: 400},
		{name: "zero weight", weight: 0, reps: 5, want: 0},
		{name: "zero reps", weight: 80, reps: 0, want: 0},
		{name: "negative weight", weight: -80, reps: 5, want: 0},
		{name: "fractional weight", weight: 22.5, reps: 8, want: 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SetVolume(tc.weight, tc.reps); got != tc.want {
				t.Errorf("SetVolume(%v, %d) = %v, want %v", tc.weight, tc.reps, got, tc.want)
			}
		})
	}
}

func TestEstimateCalories(t *testing.T) {
	tests := []struct {
		name      string
		duration  float64
		weight    float64
		intensity Intensity
		want      int
	}{
		// MET * kg * hours, rounded.
		{name: "moderate hour", duration: 60, weight: 70, intensity: IntensityModerate, want: 336},
		{name: "high half hour", duration: 30, weight: 80, intensity: IntensityHigh, want: 240},
		{name: "low", duration: 60, weight: 70, intensity: IntensityLow, want: 245},
		{name: "unknown intensity defaults to moderate", duration: 60, weight: 70, intensity: "extreme", want: 336},
		{name: "missing body weight defaults to 70kg", duration: 60, weight: 0, intensity: IntensityModerate, want: 336},
		{name: "zero duration", duration: 0, weight: 70, intensity: IntensityModerate, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateCalories(tc.duration, tc.weight, tc.intensity); got != tc.want {
				t.Errorf("EstimateCalories(%v, %v, %q) = %d, want %d", tc.duration, tc.weight, tc.intensity, got, tc.want)
			}
		})
	}
}
