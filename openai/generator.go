// Package openai implements narrative generation using the OpenAI chat
// completion API.
package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.Generator = (*Generator)(nil)

// DefaultModel is the default chat model.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = "You are an assistant embedded in a wiki knowledge base. You analyze code changes, summarize documents, and answer questions using the provided content as context."

// ChatClient abstracts the OpenAI chat completion API for testing.
// *goopenai.Client satisfies it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Generator implements wikilens.Generator using OpenAI chat completions.
type Generator struct {
	client ChatClient
	model  string
}

// NewGenerator creates a Generator around an existing chat client.
func NewGenerator(client ChatClient, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewGeneratorFromKey creates a Generator with its own API client.
func NewGeneratorFromKey(apiKey, model string) *Generator {
	return NewGenerator(goopenai.NewClient(apiKey), model)
}

// Generate produces narrative text for a prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
