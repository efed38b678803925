// Package gemini implements narrative generation using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the recommended Gemini model for narrative generation.
const DefaultModel = "gemini-2.5-flash"

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model, prompt string, config *GenerateConfig) (string, error)
}

// GenerateConfig holds configuration for content generation.
type GenerateConfig struct {
	SystemInstruction string
	Temperature       *float32
}

// Client wraps the Gemini genai.Client.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Client with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// GenerateContent implements GenerativeClient by delegating to the genai.Client.
func (c *Client) GenerateContent(ctx context.Context, model, prompt string, config *GenerateConfig) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}

	genaiConfig := &genai.GenerateContentConfig{}
	if config != nil {
		if config.Temperature != nil {
			genaiConfig.Temperature = config.Temperature
		}
		if config.SystemInstruction != "" {
			genaiConfig.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: config.SystemInstruction}},
			}
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, genaiConfig)
	if err != nil {
		return "", wrapAPIError(err)
	}

	return result.Text(), nil
}

// wrapAPIError converts genai.APIError to our APIError type so callers can
// branch on status codes.
func wrapAPIError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.Code,
			Message:    fmt.Sprintf("gemini API error (HTTP %d): %s", apiErr.Code, apiErr.Message),
		}
	}
	return err
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given status code and message.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model, prompt string, config *GenerateConfig) (string, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model, prompt string, config *GenerateConfig) (string, error) {
	return m.GenerateContentFn(ctx, model, prompt, config)
}

// Compile-time check that Client implements GenerativeClient.
var _ GenerativeClient = (*Client)(nil)
