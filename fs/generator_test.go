package fs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikilens/wikilens/fs"
	"github.com/wikilens/wikilens/mock"
)

func TestGenerator_CachesByPrompt(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mock.Generator{
		GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "response for " + prompt, nil
		},
	}

	g := fs.NewGenerator(inner, t.TempDir())
	ctx := context.Background()

	first, err := g.Generate(ctx, "prompt one")
	require.NoError(t, err)
	assert.Equal(t, "response for prompt one", first)

	second, err := g.Generate(ctx, "prompt one")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = g.Generate(ctx, "prompt two")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGenerator_ErrorNotCached(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mock.Generator{
		GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			calls++
			if calls == 1 {
				return "", errors.New("transient failure")
			}
			return "recovered", nil
		},
	}

	g := fs.NewGenerator(inner, t.TempDir())
	ctx := context.Background()

	_, err := g.Generate(ctx, "prompt")
	require.Error(t, err)

	out, err := g.Generate(ctx, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 2, calls)
}

func TestDefaultCacheDir(t *testing.T) {
	dir := fs.DefaultCacheDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, "wikilens")
}
