package mock

import (
	"context"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of wikilens.GitRunner.
type GitRunner struct {
	LogFn  func(ctx context.Context, repoPath string, limit int) ([]string, error)
	ShowFn func(ctx context.Context, repoPath, rev, path string) (string, error)
}

func (g *GitRunner) Log(ctx context.Context, repoPath string, limit int) ([]string, error) {
	return g.LogFn(ctx, repoPath, limit)
}

func (g *GitRunner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	return g.ShowFn(ctx, repoPath, rev, path)
}
