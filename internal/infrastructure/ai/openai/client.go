// Package openai provides the generative diet plan client backed by an
// OpenAI-compatible chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nutriveda/planner/internal/infrastructure/config"
	"github.com/nutriveda/planner/internal/ports/outbound"
)

// Client implements the AIService interface against a chat completions
// endpoint. It makes exactly one attempt per request; retries and
// fallback belong to the caller.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new plan generation client
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.RequestTimeout,
		client:      &http.Client{Timeout: cfg.RequestTimeout},
		logger:      logger.Named("openai-client"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GeneratePlan asks the model for a day-keyed plan and parses the reply.
func (c *Client) GeneratePlan(ctx context.Context, prompt outbound.PlanPrompt) (*outbound.AIPlanResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(prompt)},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion failed with status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	result, err := parsePlanResponse(chat.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("Failed to parse generated plan", zap.Error(err))
		return nil, err
	}

	c.logger.Info("Diet plan generated",
		zap.Int("days", len(result.Days)),
		zap.String("model", c.model),
	)
	return result, nil
}

const systemPrompt = `You are an experienced Ayurvedic dietitian. Design daily meal plans using only the foods and recipes listed by the user.

CRITICAL: Respond with ONLY a valid JSON object in this exact format:
{
  "days": [
    {
      "day": 1,
      "meals": {
        "breakfast": {"items": ["food name"], "calories": 400, "timing": "7:00-8:00", "notes": "short note"},
        "morning_snack": {"items": ["food name"], "calories": 100, "timing": "10:30", "notes": ""},
        "lunch": {"items": ["food name"], "calories": 600, "timing": "12:30-13:30", "notes": ""},
        "evening_snack": {"items": ["food name"], "calories": 100, "timing": "16:30", "notes": ""},
        "dinner": {"items": ["food name"], "calories": 450, "timing": "19:00-20:00", "notes": ""}
      }
    }
  ]
}`

// buildUserPrompt serializes the bounded patient and catalog context.
func buildUserPrompt(prompt outbound.PlanPrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day Ayurvedic diet plan targeting %.0f kcal per day.\n", prompt.Days, prompt.TargetCalories)

	patientJSON, _ := json.Marshal(prompt.PatientSummary)
	fmt.Fprintf(&b, "Patient: %s\n", patientJSON)
	if prompt.Season != "" {
		fmt.Fprintf(&b, "Season: %s\n", prompt.Season)
	}

	foodsJSON, _ := json.Marshal(prompt.Foods)
	fmt.Fprintf(&b, "Available foods: %s\n", foodsJSON)

	if len(prompt.Recipes) > 0 {
		recipesJSON, _ := json.Marshal(prompt.Recipes)
		fmt.Fprintf(&b, "Available recipes by meal: %s\n", recipesJSON)
	}

	b.WriteString("Use only the listed items. Respect the patient's allergies, conditions and dietary habits.")
	return b.String()
}

// parsePlanResponse extracts and decodes the JSON plan. Models sometimes
// wrap output in code fences or surrounding prose, so the content is
// trimmed to the outermost brace pair first.
func parsePlanResponse(content string) (*outbound.AIPlanResponse, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	var result outbound.AIPlanResponse
	if err := json.Unmarshal([]byte(content[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	if len(result.Days) == 0 {
		return nil, fmt.Errorf("generated plan contains no days")
	}
	return &result, nil
}
