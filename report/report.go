// Package report generates narrative financial reports and answers
// free-text questions about analysed data, using the Gemini API.
package report

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrGeneration wraps any failure of the underlying text-generation
// service, so callers can tell "the report could not be generated" apart
// from "your data is malformed".
var ErrGeneration = errors.New("report generation failed")

const defaultModel = "gemini-2.5-flash"

const systemInstruction = "You are a financial advisor providing clear, actionable insights."

// Generator produces a one-shot narrative report from a prompt.
type Generator struct {
	// Model overrides the default Gemini model when set.
	Model string

	client *genai.Client
}

// NewGenerator creates a Generator on top of an initialized Gemini client.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

func (g *Generator) model() string {
	if g.Model != "" {
		return g.Model
	}
	return defaultModel
}

func (g *Generator) config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
}

// Generate sends the prompt and returns the generated report. The call is
// synchronous and blocks until the service answers or fails; any failure
// wraps ErrGeneration.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model(), genai.Text(prompt), g.config())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
