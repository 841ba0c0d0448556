package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"prism-backend/internal/llm"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// contentGenerator is the slice of *genai.Models the client needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Client on the Gemini API.
type Client struct {
	model  string
	models contentGenerator
}

// NewClient constructs a Gemini client. The API key is required.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{model: model, models: gc.Models}, nil
}

// Model returns the fixed model identifier used for every call.
func (c *Client) Model() string {
	return c.model
}

// Complete sends the prompt as a single user turn and returns the response text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate model=%s: %w", c.model, err)
	}
	if resp == nil {
		return "", llm.ErrEmptyCompletion
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini blocked prompt: %s", resp.PromptFeedback.BlockReason)
		}
		return "", llm.ErrEmptyCompletion
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
