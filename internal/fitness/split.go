package fitness

import (
	"errors"
	"fmt"

	"alcyxob/fitmetric/internal/domain"
)

// ErrUnsupportedSchedule is returned when a requested days-per-week count
// has no split template. The composer's activity-level mapping keeps
// resolved values inside the supported range, so surfacing this error
// to a user indicates an upstream defaulting bug.
var ErrUnsupportedSchedule = errors.New("unsupported training schedule")

// DayTemplate describes one day of a weekly split: which muscle groups to
// train, or a rest day when Focus is empty.
type DayTemplate struct {
	Day       int
	DayName   string
	Focus     []domain.MuscleGroup
	IsRestDay bool
}

// weeklySplits maps training days per week to a fixed 7-day template.
var weeklySplits = map[int][]DayTemplate{
	3: {
		{Day: 1, DayName: "Monday", Focus: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleCore}},
		{Day: 2, DayName: "Tuesday", IsRestDay: true},
		{Day: 3, DayName: "Wednesday", Focus: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleCore}},
		{Day: 4, DayName: "Thursday", IsRestDay: true},
		{Day: 5, DayName: "Friday", Focus: []domain.MuscleGroup{domain.MuscleLegs, domain.MuscleCardio}},
		{Day: 6, DayName: "Saturday", IsRestDay: true},
		{Day: 7, DayName: "Sunday", IsRestDay: true},
	},
	4: {
		{Day: 1, DayName: "Monday", Focus: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleCore}},
		{Day: 2, DayName: "Tuesday", Focus: []domain.MuscleGroup{domain.MuscleBack}},
		{Day: 3, DayName: "Wednesday", IsRestDay: true},
		{Day: 4, DayName: "Thursday", Focus: []domain.MuscleGroup{domain.MuscleLegs}},
		{Day: 5, DayName: "Friday", Focus: []domain.MuscleGroup{domain.MuscleCardio, domain.MuscleCore}},
		{Day: 6, DayName: "Saturday", IsRestDay: true},
		{Day: 7, DayName: "Sunday", IsRestDay: true},
	},
	5: {
		{Day: 1, DayName: "Monday", Focus: []domain.MuscleGroup{domain.MuscleChest}},
		{Day: 2, DayName: "Tuesday", Focus: []domain.MuscleGroup{domain.MuscleBack}},
		{Day: 3, DayName: "Wednesday", Focus: []domain.MuscleGroup{domain.MuscleLegs}},
		{Day: 4, DayName: "Thursday", Focus: []domain.MuscleGroup{domain.MuscleCore, domain.MuscleCardio}},
		{Day: 5, DayName: "Friday", Focus: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleBack}},
		{Day: 6, DayName: "Saturday", IsRestDay: true},
		{Day: 7, DayName: "Sunday", IsRestDay: true},
	},
}

// SplitFor returns the 7-day split template for the given training days
// per week. Supported values are 3, 4 and 5; anything else fails with
// ErrUnsupportedSchedule.
func SplitFor(daysPerWeek int) ([]DayTemplate, error) {
	template, ok := weeklySplits[daysPerWeek]
	if !ok {
		return nil, fmt.Errorf("%w: %d days per week (supported: 3, 4, 5)", ErrUnsupportedSchedule, daysPerWeek)
	}
	out := make([]DayTemplate, len(template))
	copy(out, template)
	return out, nil
}
