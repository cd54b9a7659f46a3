package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAIClient implements Client against the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIClient creates a new OpenAI-backed client.
func NewOpenAIClient(apiKey, model string, httpClient *http.Client) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: openAIEndpoint,
		client:  httpClient,
	}
}

// Name returns the provider identifier.
func (c *OpenAIClient) Name() string {
	return "openai"
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a single user message and unwraps the first
// choice.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(openAIRequest{
		Model:       c.model,
		Messages:    []openAIMessage{{Role: "user", Content: prompt}},
		Temperature: 0,
	})
	if err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	var result openAIResponse
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

	if len(result.Choices) == 0 {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("empty response")}
	}

	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return "", &CompletionError{Provider: c.Name(), Err: fmt.Errorf("empty completion text")}
	}

	return text, nil
}
