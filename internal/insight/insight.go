// Package insight holds the AI commentary and automation collaborators.
// Everything in here is best-effort by contract: a failing or unavailable
// backend must never block or alter the deterministic plan and analytics
// output, so callers always pair these with a safe fallback.
package insight

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by the disabled generator and can be returned
// by real backends when they are down. Callers fall back to canned text.
var ErrUnavailable = errors.New("insight generation unavailable")

// OnboardingProfile is the slice of a new user's profile the onboarding
// prompt is built from.
type OnboardingProfile struct {
	Name         string
	Goal         string
	BMI          float64 // 0 when unknown
	Age          int
	Gender       string
	FitnessLevel string
}

// WeeklyStats summarizes a user's training week for the notification prompt.
type WeeklyStats struct {
	DaysActive  int
	TotalVolume float64
}

// Generator produces free-text commentary. Implementations must be safe for
// concurrent use.
type Generator interface {
	// GenerateText answers an arbitrary prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// OnboardingInsight produces a one-sentence welcome tip for a new user.
	OnboardingInsight(ctx context.Context, profile OnboardingProfile) (string, error)
	// WeeklyNotification produces a short motivational push message.
	WeeklyNotification(ctx context.Context, userName string, stats WeeklyStats) (string, error)
}

// disabledGenerator is used when no API key is configured.
type disabledGenerator struct{}

// NewDisabledGenerator returns a Generator whose every call fails with
// ErrUnavailable, pushing callers onto their fallbacks.
func NewDisabledGenerator() Generator {
	return disabledGenerator{}
}

func (disabledGenerator) GenerateText(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

func (disabledGenerator) OnboardingInsight(context.Context, OnboardingProfile) (string, error) {
	return "", ErrUnavailable
}

func (disabledGenerator) WeeklyNotification(context.Context, string, WeeklyStats) (string, error) {
	return "", ErrUnavailable
}
