package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.Generator = (*Generator)(nil)

// Generator wraps a Generator with file-based caching keyed by prompt
// hash. Identical prompts return the cached text without another model
// call.
type Generator struct {
	inner    wikilens.Generator
	cacheDir string
}

// NewGenerator creates a new caching generator.
func NewGenerator(inner wikilens.Generator, cacheDir string) *Generator {
	return &Generator{
		inner:    inner,
		cacheDir: cacheDir,
	}
}

// Generate returns a cached response or delegates to the inner generator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	hash := hashPrompt(prompt)

	// Check cache
	if cached, err := os.ReadFile(g.cachePath(hash)); err == nil {
		return string(cached), nil
	}

	// Cache miss - delegate to inner
	result, err := g.inner.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	// Store in cache (best-effort)
	_ = g.saveToCache(hash, result)

	return result, nil
}

func hashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func (g *Generator) cachePath(hash string) string {
	return filepath.Join(g.cacheDir, hash+".txt")
}

func (g *Generator) saveToCache(hash, result string) error {
	if err := os.MkdirAll(g.cacheDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(g.cachePath(hash), []byte(result), 0644)
}
