package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiGenerator implements Generator using Google's Gemini models.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator initializes a new Gemini client. A missing API key or a
// failed client init yields a not-ready generator rather than an error: the
// service still starts, the health endpoint reports the state, and planning
// requests are rejected with a "not ready" condition.
func NewGeminiGenerator(ctx context.Context, apiKey string) *GeminiGenerator {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("ai: GEMINI_API_KEY not set, text generation disabled")
		return &GeminiGenerator{}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("ai: gemini client init failed: %v", err)
		return &GeminiGenerator{}
	}

	return &GeminiGenerator{client: client}
}

// Close cleans up the Gemini client resources.
func (g *GeminiGenerator) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// Ready reports whether the underlying client was initialized.
func (g *GeminiGenerator) Ready() bool {
	return g.client != nil
}

// Generate sends the prompt to Gemini and returns the plain-text response.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error) {
	if !g.Ready() {
		return "", fmt.Errorf("gemini: client not initialized")
	}

	model := g.client.GenerativeModel(geminiModel)
	model.SetMaxOutputTokens(maxTokens)
	model.SetTemperature(temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	// Extract text from the response parts.
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return text, nil
}
