package linediff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/linediff"
)

func TestCompute_IdenticalSnapshots(t *testing.T) {
	t.Parallel()

	snap := wikilens.NewSnapshot("v1", "a\nb\nc")
	script := linediff.Compute(snap, snap)

	assert.Empty(t, script)
}

func TestCompute_EmptyOldNonEmptyNew(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "")
	new := wikilens.NewSnapshot("new", "one\ntwo\nthree")

	script := linediff.Compute(old, new)

	require.Len(t, script, 3)
	for i, op := range script {
		assert.Equal(t, wikilens.OpAdd, op.Kind)
		assert.Equal(t, new.Lines[i], op.Text)
		assert.Equal(t, i+1, op.NewLine)
		assert.Zero(t, op.OldLine)
	}

	added, removed := script.Counts()
	assert.Equal(t, 3, added)
	assert.Zero(t, removed)
}

func TestCompute_ReplacementAndAddition(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "a\nb\nc")
	new := wikilens.NewSnapshot("new", "a\nx\nc\nd")

	script := linediff.Compute(old, new)

	require.Len(t, script, 5)
	assert.Equal(t, wikilens.EditOp{Kind: wikilens.OpContext, Text: "a", OldLine: 1, NewLine: 1}, script[0])
	assert.Equal(t, wikilens.EditOp{Kind: wikilens.OpRemove, Text: "b", OldLine: 2}, script[1])
	assert.Equal(t, wikilens.EditOp{Kind: wikilens.OpAdd, Text: "x", NewLine: 2}, script[2])
	assert.Equal(t, wikilens.EditOp{Kind: wikilens.OpContext, Text: "c", OldLine: 3, NewLine: 3}, script[3])
	assert.Equal(t, wikilens.EditOp{Kind: wikilens.OpAdd, Text: "d", NewLine: 4}, script[4])

	added, removed := script.Counts()
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
}

func TestCompute_TrailingNewlineIsNotAChange(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "a\nb\nc\n")
	new := wikilens.NewSnapshot("new", "a\nb\nc")

	assert.Empty(t, linediff.Compute(old, new))
}

func TestCompute_DistantContextIsOmitted(t *testing.T) {
	t.Parallel()

	lines := make([]string, 0, 21)
	for i := 0; i < 10; i++ {
		lines = append(lines, "same")
	}
	lines = append(lines, "middle")
	for i := 0; i < 10; i++ {
		lines = append(lines, "same")
	}

	oldText := strings.Join(lines, "\n")
	newLines := append([]string{}, lines...)
	newLines[10] = "changed"
	newText := strings.Join(newLines, "\n")

	script := linediff.Compute(
		wikilens.NewSnapshot("old", oldText),
		wikilens.NewSnapshot("new", newText),
	)

	// Three context lines on each side of the one-line replacement.
	require.Len(t, script, 8)
	assert.Equal(t, wikilens.OpContext, script[0].Kind)
	assert.Equal(t, 8, script[0].OldLine)
	assert.Equal(t, wikilens.OpRemove, script[3].Kind)
	assert.Equal(t, "middle", script[3].Text)
	assert.Equal(t, wikilens.OpAdd, script[4].Kind)
	assert.Equal(t, "changed", script[4].Text)
	assert.Equal(t, wikilens.OpContext, script[7].Kind)
	assert.Equal(t, 14, script[7].OldLine)
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "a\nb\nc\nd\ne\nf")
	new := wikilens.NewSnapshot("new", "b\na\nc\ne\nd\nf")

	first := linediff.Render(old, new, linediff.Compute(old, new))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, linediff.Render(old, new, linediff.Compute(old, new)))
	}
}

func TestRender_EmptyScript(t *testing.T) {
	t.Parallel()

	snap := wikilens.NewSnapshot("v1", "a\nb")
	assert.Empty(t, linediff.Render(snap, snap, nil))
}

func TestRender_UnifiedFormat(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("Page A", "a\nb\nc")
	new := wikilens.NewSnapshot("Page B", "a\nx\nc\nd")

	got := linediff.Render(old, new, linediff.Compute(old, new))

	want := strings.Join([]string{
		"--- Page A",
		"+++ Page B",
		"@@ -1,3 +1,4 @@",
		" a",
		"-b",
		"+x",
		" c",
		"+d",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_SplitsDistantChangesIntoHunks(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "same")
	}
	oldLines := append([]string{"first"}, lines...)
	oldLines = append(oldLines, "last")
	newLines := append([]string{"FIRST"}, lines...)
	newLines = append(newLines, "LAST")

	old := wikilens.NewSnapshot("old", strings.Join(oldLines, "\n"))
	new := wikilens.NewSnapshot("new", strings.Join(newLines, "\n"))

	got := linediff.Render(old, new, linediff.Compute(old, new))

	assert.Equal(t, 2, strings.Count(got, "@@ -"))
	assert.Contains(t, got, "-first")
	assert.Contains(t, got, "+FIRST")
	assert.Contains(t, got, "-last")
	assert.Contains(t, got, "+LAST")
}
