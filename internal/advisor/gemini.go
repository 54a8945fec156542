package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/modaber/modaber/internal/common"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the Gemini client settings.
type Config struct {
	APIKey string
	Model  string
}

// geminiClient implements Client using the Gemini API.
type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed advisory client.
func NewGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini.api_key", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

// Generate asks the model for JSON constrained to the given array schema.
func (c *geminiClient) Generate(ctx context.Context, prompt string, schema *genai.Schema) (json.RawMessage, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model %s", c.model)
	}
	return json.RawMessage(text), nil
}
