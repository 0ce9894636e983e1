package insight

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiGenerator implements Generator on top of the Gemini API.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Generator backed by Gemini. The model name
// comes from configuration (e.g. "gemini-2.0-flash").
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

// GenerateText answers a prompt with a single text completion.
func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}

// OnboardingInsight asks for one high-impact piece of advice for a new member.
func (g *geminiGenerator) OnboardingInsight(ctx context.Context, profile OnboardingProfile) (string, error) {
	bmi := "Unknown"
	if profile.BMI > 0 {
		bmi = fmt.Sprintf("%.1f", profile.BMI)
	}
	prompt := fmt.Sprintf(`Analyze this new gym member:
Name: %s
Goal: %s
BMI: %s
Age: %d
Fitness level: %s
Give one single, high-impact piece of advice to start their journey. Max 1 sentence.`,
		profile.Name, profile.Goal, bmi, profile.Age, profile.FitnessLevel)
	return g.GenerateText(ctx, prompt)
}

// WeeklyNotification asks for a short motivational push notification.
func (g *geminiGenerator) WeeklyNotification(ctx context.Context, userName string, stats WeeklyStats) (string, error) {
	prompt := fmt.Sprintf(`Act as a high-performance fitness coach.
Write a short, punchy, and motivational push notification (max 150 chars) for %s.
Context: They worked out %d times this week with a total volume of %.0fkg.
Constraint: Do not use emojis. Be professional but intense.`,
		userName, stats.DaysActive, stats.TotalVolume)
	return g.GenerateText(ctx, prompt)
}
