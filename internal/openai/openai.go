// Package openai implements the chat-completion client used for survey
// field extraction.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/romyhermawan96/asvarabot/internal/config"
)

// systemInstruction restricts the model to machine-readable output.
const systemInstruction = "You are a data extraction assistant. Respond only with valid JSON."

// Client wraps the OpenAI-compatible chat-completion API with the fixed
// parameters of the extraction call: one model, low temperature, a token
// ceiling sized for the four-field object.
type Client struct {
	api         *gopenai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	log         *slog.Logger
}

// NewClient creates a completion client from configuration.
func NewClient(cfg config.OpenAIConfig, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}

	apiConfig := gopenai.DefaultConfig(cfg.APIKey)
	apiConfig.BaseURL = cfg.BaseURL
	apiConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:         gopenai.NewClientWithConfig(apiConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		log:         log.With("component", "openai_client"),
	}, nil
}

// Complete sends one chat-completion request and returns the model's reply
// text. A non-success HTTP status surfaces as an error carrying the status
// (via the client library's APIError); it is never retried here.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	startTime := time.Now()
	resp, err := c.api.CreateChatCompletion(timeoutCtx, gopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: gopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices returned")
	}

	c.log.DebugContext(ctx, "completion received",
		"api_duration_ms", time.Since(startTime).Milliseconds(),
		"total_tokens", resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}
