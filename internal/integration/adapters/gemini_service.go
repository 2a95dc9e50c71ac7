// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-advisor/backend/internal/application/adapter"
)

// GeminiService implements the AdvisorService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise answers a financial question grounded on the precomputed facts.
// The model is instructed to use only the numbers it is given; all figures
// come from the calculation engine, never from the model.
func (s *GeminiService) Advise(ctx context.Context, request *adapter.AdvisorRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	answer, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return answer, nil
}

// buildPrompt creates the grounded prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.AdvisorRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance advisor. Answer the user's question using ONLY the computed figures listed below.

RULES:
- Never perform your own arithmetic. Every number in your answer must come verbatim from the figures below.
- If a figure is listed as "undefined", say that the metric cannot be determined from the available data. Do not guess.
- Do not recommend specific financial products, institutions, or securities.
- Keep the answer concise and practical, at most three short paragraphs.
- Answer in plain text, no markdown.

COMPUTED FIGURES:
`)

	for _, fact := range request.Facts {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", fact.Label, fact.Value))
	}

	sb.WriteString("\nQUESTION:\n")
	sb.WriteString(request.Question)
	sb.WriteString("\n")

	return sb.String()
}

// parseResponse extracts the answer text from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return textContent, nil
}
