// Package mock provides hand-written mocks for the domain interfaces.
package mock

import (
	"context"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.Generator = (*Generator)(nil)

// Generator is a mock implementation of wikilens.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}
