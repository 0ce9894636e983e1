package fitness

import (
	"testing"

	"alcyxob/fitmetric/internal/domain"
)

func TestPredictFitnessScore(t *testing.T) {
	tests := []struct {
		name string
		in   ScoreInput
		want int
	}{
		{
			// BMI 24.69: 50 - 9.88 - 4.5 + 8 + 15 + 5 = 63.6 -> 64
			name: "typical beginner",
			in: ScoreInput{
				WeightKg: 80, HeightCm: 180, Age: 30,
				Gender: domain.GenderMale, ActivityLevel: domain.ActivitySedentary,
				Pushups: 10, FitnessLevel: domain.LevelBeginner,
			},
			want: 64,
		},
		{
			// Huge pushup count pushes past the ceiling.
			name: "clamped at 100",
			in: ScoreInput{
				WeightKg: 70, HeightCm: 175, Age: 25,
				Gender: domain.GenderMale, ActivityLevel: domain.ActivityVeryActive,
				Pushups: 60, FitnessLevel: domain.LevelAdvanced,
			},
			want: 100,
		},
		{
			// 45 - 20 - 12 + 8 + 0 + 5 = 26
			name: "female bias and high BMI",
			in: ScoreInput{
				WeightKg: 125, HeightCm: 158.11, Age: 80,
				Gender: domain.GenderFemale, ActivityLevel: domain.ActivitySedentary,
				Pushups: 0, FitnessLevel: domain.LevelBeginner,
			},
			want: 26,
		},
		{
			// Missing height/weight contribute BMI 0; unknown labels fall
			// back to the lowest factors: 50 + 8 + 5 = 63.
			name: "degenerate measurements",
			in: ScoreInput{
				Gender: domain.GenderOther, ActivityLevel: "unknown",
				FitnessLevel: "unknown",
			},
			want: 63,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PredictFitnessScore(tc.in); got != tc.want {
				t.Errorf("PredictFitnessScore() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPredictFitnessScoreFloor(t *testing.T) {
	got := PredictFitnessScore(ScoreInput{
		WeightKg: 200, HeightCm: 150, Age: 90,
		Gender: domain.GenderFemale, ActivityLevel: domain.ActivitySedentary,
	})
	if got != 10 {
		t.Errorf("score = %d, want floor 10", got)
	}
}
