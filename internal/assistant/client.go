package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"contaflow-bot/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

var ErrNotConfigured = errors.New("completion api key not configured")

const temperature = 0.7

// Client talks to an OpenAI-compatible chat completions endpoint. One attempt per call.
type Client struct {
	api        *openai.Client
	model      string
	configured bool
}

func NewClient(cfg config.Config, httpClient *http.Client) *Client {
	oc := openai.DefaultConfig(cfg.OpenAIKey)
	oc.BaseURL = cfg.OpenAIBaseURL
	if httpClient != nil {
		oc.HTTPClient = httpClient
	}
	return &Client{
		api:        openai.NewClientWithConfig(oc),
		model:      cfg.OpenAIModel,
		configured: cfg.OpenAIKey != "",
	}
}

func (c *Client) Configured() bool {
	return c.configured
}

// Complete returns the trimmed content of the first choice ("" when there is none).
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// upstreamDetails pulls status and body out of go-openai errors for logging.
func upstreamDetails(err error) []any {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return []any{"status", apiErr.HTTPStatusCode, "body", apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return []any{"status", reqErr.HTTPStatusCode, "body", string(reqErr.Body)}
	}
	return nil
}
