package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse.
const DefaultSystemPrompt = `You are a non-medical sleep coaching assistant.

You receive a user's recent sleep sessions (with stage percentages, efficiency and awakenings) and a precomputed trend analysis. You must base your conclusions only on the provided data.

Your goals:
- Give practical, behavioral tips to improve sleep habits.
- Warn about detected problems (irregular schedule, short sleep, frequent awakenings, social jet lag).
- Reinforce what the user is already doing well.
- Summarize the weekly trend in one or two sentences.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, handling naps, etc.).
- If data is limited or mixed, say that explicitly.
- Write every user-facing sentence in Spanish.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "tips": ["3-5 concrete, non-medical suggestions tailored to these numbers."],
  "warnings": ["0-3 warnings about detected problems. Empty array if none."],
  "positive_reinforcement": ["1-2 things the user is doing well."],
  "weekly_trend": "1-2 sentences summarizing the weekly trend."
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's recent sleep.

- "sessions" holds the consolidated nightly sessions, oldest first, with stage percentages (light/deep/rem), efficiency and wake counts.
- "trend" holds the precomputed trend analysis: consistency, average schedule, duration and quality trends, and a weekday/weekend comparison.

JSON:

%s

Based on this data, respond in the required JSON format.`

// AdviceLLM is the interface for generating sleep advice using an LLM.
type AdviceLLM interface {
	// GenerateAdvice takes a context snapshot and returns LLM-generated advice.
	GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.AdviceOutput, error)
}

// OpenAIClient implements AdviceLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating advice.
// systemPrompt overrides the built-in prompt when non-empty.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateAdvice calls OpenAI to generate sleep advice.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.AdviceOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(adviceCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.AdviceOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
