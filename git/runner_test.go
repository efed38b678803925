package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikilens/wikilens/git"
)

// setupTestRepo creates a temporary git repository with two versions of a
// tracked file.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "app.py", "a\nb\nc\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	writeFile(t, dir, "app.py", "a\nx\nc\nd\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Change app")

	return dir
}

// runGit executes a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestRunner_Log(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)
	runner := git.NewRunner()

	hashes, err := runner.Log(context.Background(), dir, 10)

	require.NoError(t, err)
	require.Len(t, hashes, 2)
	assert.NotEqual(t, hashes[0], hashes[1])
}

func TestRunner_Log_Limit(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)
	runner := git.NewRunner()

	hashes, err := runner.Log(context.Background(), dir, 1)

	require.NoError(t, err)
	assert.Len(t, hashes, 1)
}

func TestRunner_Show(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)
	runner := git.NewRunner()
	ctx := context.Background()

	hashes, err := runner.Log(ctx, dir, 10)
	require.NoError(t, err)
	require.Len(t, hashes, 2)

	// hashes[0] is the most recent commit.
	newContent, err := runner.Show(ctx, dir, hashes[0], "app.py")
	require.NoError(t, err)
	assert.Equal(t, "a\nx\nc\nd\n", newContent)

	oldContent, err := runner.Show(ctx, dir, hashes[1], "app.py")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", oldContent)
}

func TestRunner_Show_MissingPath(t *testing.T) {
	t.Parallel()

	dir := setupTestRepo(t)
	runner := git.NewRunner()

	_, err := runner.Show(context.Background(), dir, "HEAD", "nope.py")
	assert.Error(t, err)
}

func TestRunner_Log_InvalidRepo(t *testing.T) {
	t.Parallel()

	runner := git.NewRunner()
	_, err := runner.Log(context.Background(), t.TempDir(), 5)
	assert.Error(t, err)
}
