package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-1.5-flash"

// GeminiGenerator produces text using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini backed text generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends the prompt and returns the model's text reply.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
