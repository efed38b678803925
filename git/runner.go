// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Log returns commit hashes from the repository at repoPath, limited to n commits.
func (r *Runner) Log(ctx context.Context, repoPath string, limit int) ([]string, error) {
	args := []string{"-C", repoPath, "log", "--format=%H", fmt.Sprintf("-n%d", limit)}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git log failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	var hashes []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line != "" {
			hashes = append(hashes, line)
		}
	}
	return hashes, nil
}

// Show returns the content of path at revision rev, suitable for building
// a snapshot of one version of a file.
func (r *Runner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	args := []string{"-C", repoPath, "show", rev + ":" + path}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git show failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return string(output), nil
}
