package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"

	// The messages API requires an explicit output cap.
	anthropicMaxTokens = 1024
)

// AnthropicClient implements Client against the Anthropic messages API.
type AnthropicClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewAnthropicClient creates a new Anthropic-backed client.
func NewAnthropicClient(apiKey, model string, httpClient *http.Client) *AnthropicClient {
	return &AnthropicClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicEndpoint,
		client:  httpClient,
	}
}

// Name returns the provider identifier.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a single user message and unwraps the first
// text content block.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: err}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	var result anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		msg := "unknown error"
		if result.Error != nil {
			msg = result.Error.Message
		}
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, msg)}
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			if text := strings.TrimSpace(block.Text); text != "" {
				return text, nil
			}
		}
	}

	return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("empty completion text")}
}
