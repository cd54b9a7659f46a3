// Package llm adapts the two hosted completion providers behind a single
// Client interface. The variant is chosen once, at configuration resolution,
// via New.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/iishyfishyy/infragpt/internal/config"
)

// Client is a completion backend: one prompt in, one text completion out.
type Client interface {
	// Complete sends the prompt and returns the textual completion with any
	// provider envelope stripped. Single attempt, no retry.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier, e.g. "openai" or "anthropic".
	Name() string
}

// CompletionError wraps any failure of a completion call: network errors,
// authentication failures, rate limiting, malformed responses.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// New constructs the client for the resolved configuration. httpClient may
// be nil, in which case a default with a 30s timeout is used.
func New(cfg *config.Config, httpClient *http.Client) (Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.APIModel, httpClient), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg.APIKey, cfg.APIModel, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
