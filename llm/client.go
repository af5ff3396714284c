// Package llm handles communication with the OpenRouter chat completion
// API used to generate listing content.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "deepseek/deepseek-chat"

	// Environment variable holding the OpenRouter API key
	EnvAPIKey = "API_KEY_OPENROUTER"
)

// Client is an abstraction over text generation providers
type Client interface {
	// GenerateContent generates text content for the given prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Model returns the underlying provider model name
	Model() string
}

// GenerationConfig holds the sampling parameters sent with every request
type GenerationConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopP        float64 `json:"top_p"`
}

// DefaultGenerationConfig returns parameters balanced between creativity
// and consistency for property descriptions
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Model:       defaultModel,
		Temperature: 0.7,
		MaxTokens:   2048,
		TopP:        0.8,
	}
}

// OpenRouterClient implements Client against the OpenRouter REST API
type OpenRouterClient struct {
	http   *resty.Client
	config GenerationConfig
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenRouterClient creates a client for the OpenRouter API. When apiKey
// is empty the API_KEY_OPENROUTER environment variable is used.
func NewOpenRouterClient(apiKey string) (*OpenRouterClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvAPIKey)
	}

	http := resty.New().
		SetBaseURL(defaultBaseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)

	return &OpenRouterClient{
		http:   http,
		config: DefaultGenerationConfig(),
	}, nil
}

// SetBaseURL overrides the API endpoint, mainly for tests
func (c *OpenRouterClient) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

// Model returns the configured model name
func (c *OpenRouterClient) Model() string {
	return c.config.Model
}

// GenerateContent sends the prompt as a single-turn chat completion and
// returns the normalized response text.
func (c *OpenRouterClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	request := chatRequest{
		Model:       c.config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		TopP:        c.config.TopP,
	}

	var response chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		SetError(&response).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}
	if resp.IsError() {
		if response.Error != nil {
			return "", fmt.Errorf("API call failed: %s", response.Error.Message)
		}
		return "", fmt.Errorf("API call failed: status %d", resp.StatusCode())
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from API")
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from API")
	}

	return NormalizeText(content), nil
}

// TestConnection verifies the API key with a trivial prompt
func (c *OpenRouterClient) TestConnection(ctx context.Context) bool {
	response, err := c.GenerateContent(ctx, "Respond with 'OK' if you can understand this message.")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToUpper(response), "OK")
}
