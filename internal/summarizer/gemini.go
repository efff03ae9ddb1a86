package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/KellisLab/auto-meeting-minutes/internal/logger"
)

type geminiService struct {
	apiKey string
	model  string
	logger logger.Logger
}

// NewGemini creates a Service backed by the Gemini API
func NewGemini(apiKey, model string, log logger.Logger) Service {
	return &geminiService{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}

// Summarize sends the prompt to Gemini and returns the generated text
func (s *geminiService) Summarize(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", Fatal(fmt.Errorf("create client: %w", err))
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", Transient(fmt.Errorf("empty response from Gemini"))
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", Transient(fmt.Errorf("empty response from Gemini"))
	}

	return text, nil
}

// classify sorts a generation error into the retryable and non-retryable
// failure classes.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Transient(fmt.Errorf("generate content: %w", err))
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(msg, "UNAVAILABLE"),
		strings.Contains(msg, "DEADLINE_EXCEEDED"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "timeout"):
		return Transient(fmt.Errorf("generate content: %w", err))
	case strings.Contains(msg, "401"),
		strings.Contains(msg, "403"),
		strings.Contains(msg, "API key"),
		strings.Contains(msg, "PERMISSION_DENIED"),
		strings.Contains(msg, "UNAUTHENTICATED"),
		strings.Contains(msg, "INVALID_ARGUMENT"):
		return Fatal(fmt.Errorf("generate content: %w", err))
	default:
		return Transient(fmt.Errorf("generate content: %w", err))
	}
}
