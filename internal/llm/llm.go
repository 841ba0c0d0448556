package llm

import (
	"context"
	"errors"
)

// Client sends one prompt to a text generation model and returns its raw completion.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client when no credential is set.
var ErrNotConfigured = errors.New("llm client not configured")

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("llm returned empty completion")

// PlaceholderClient stands in when no provider credential is configured.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
