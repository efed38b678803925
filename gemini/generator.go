package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.Generator = (*Generator)(nil)

// DefaultTimeout is the default timeout for a single generation call.
const DefaultTimeout = 60 * time.Second

// Generator implements wikilens.Generator using Google Gemini.
type Generator struct {
	client  GenerativeClient
	model   string
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the timeout for API calls.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client GenerativeClient, model string, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces narrative text for a prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.GenerateContent(ctx, g.model, prompt, BuildConfig())
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("gemini: returned empty response")
	}

	return strings.TrimSpace(text), nil
}

// BuildConfig returns the GenerateConfig for narrative calls.
func BuildConfig() *GenerateConfig {
	temp := float32(0.4)
	return &GenerateConfig{
		SystemInstruction: `You are an assistant embedded in a wiki knowledge base. You analyze code changes, summarize documents, and answer questions using the provided content as context.

Be concise and concrete. When asked about code, ground every statement in the snippet or diff you were given.`,
		Temperature: &temp,
	}
}
