package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const n8nTimeout = 5 * time.Second // fail fast if n8n is down

const secretHeader = "x-fitmetric-secret"

// N8NClient triggers automation workflows over n8n webhooks. Calls are
// fire-and-forget from the caller's perspective: errors are returned for
// logging but never propagate into user-facing flows.
type N8NClient struct {
	baseURL string
	secret  string
	client  *http.Client
}

// NewN8NClient creates a webhook client. An empty baseURL disables the
// client; triggers become no-ops.
func NewN8NClient(baseURL, secret string) *N8NClient {
	return &N8NClient{
		baseURL: baseURL,
		secret:  secret,
		client:  &http.Client{Timeout: n8nTimeout},
	}
}

// Enabled reports whether a webhook base URL is configured.
func (c *N8NClient) Enabled() bool {
	return c.baseURL != ""
}

// TriggerAutomation POSTs a payload to the given webhook path. Every event
// carries a unique eventId and timestamp for idempotent processing on the
// n8n side.
func (c *N8NClient) TriggerAutomation(ctx context.Context, webhookPath string, payload map[string]any) error {
	if !c.Enabled() {
		return nil
	}

	payload["eventId"] = uuid.NewString()
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal n8n payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+webhookPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build n8n request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, c.secret)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("trigger %s: %w", webhookPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("trigger %s: unexpected status %d", webhookPath, resp.StatusCode)
	}
	return nil
}

// SendWorkoutSummary pushes a completed workout to the summary workflow.
func (c *N8NClient) SendWorkoutSummary(ctx context.Context, userID string, workoutName string, totalVolume float64) error {
	return c.TriggerAutomation(ctx, "/webhook/generate-summary", map[string]any{
		"userId":      userID,
		"workoutName": workoutName,
		"totalVolume": totalVolume,
	})
}

// SendPersonalNotification pushes a motivational message to a user.
func (c *N8NClient) SendPersonalNotification(ctx context.Context, userID, message string) error {
	return c.TriggerAutomation(ctx, "/webhook/send-notification", map[string]any{
		"userId":  userID,
		"message": message,
		"type":    "motivation",
	})
}
