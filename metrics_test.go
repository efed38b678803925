package wikilens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/linediff"
)

func TestComputeMetrics_EmptyOldUsesDenominatorFloor(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "")
	new := wikilens.NewSnapshot("new", "one\ntwo\nthree")
	script := linediff.Compute(old, new)

	m := wikilens.ComputeMetrics(old, new, script)

	assert.Equal(t, 3, m.LinesAdded)
	assert.Zero(t, m.LinesRemoved)
	assert.InDelta(t, 300.0, m.PercentChanged, 0.001)
}

func TestComputeMetrics_EndToEnd(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "a\nb\nc")
	new := wikilens.NewSnapshot("new", "a\nx\nc\nd")
	script := linediff.Compute(old, new)

	m := wikilens.ComputeMetrics(old, new, script)

	assert.Equal(t, 2, m.LinesAdded)
	assert.Equal(t, 1, m.LinesRemoved)
	assert.InDelta(t, 100.0, m.PercentChanged, 0.001)
	assert.Zero(t, m.BlocksChanged)
}

func TestComputeMetrics_IdenticalSnapshots(t *testing.T) {
	t.Parallel()

	snap := wikilens.NewSnapshot("v", "a\nb\nc")
	m := wikilens.ComputeMetrics(snap, snap, linediff.Compute(snap, snap))

	assert.Zero(t, m.LinesAdded)
	assert.Zero(t, m.LinesRemoved)
	assert.Zero(t, m.PercentChanged)
	assert.Zero(t, m.BlocksChanged)
}

func TestComputeMetrics_PercentRounding(t *testing.T) {
	t.Parallel()

	// 1 change over 3 lines: 33.333...% rounds to 33.33.
	old := wikilens.NewSnapshot("old", "a\nb\nc")
	script := wikilens.EditScript{{Kind: wikilens.OpAdd, Text: "x"}}

	m := wikilens.ComputeMetrics(old, wikilens.NewSnapshot("new", "a\nb\nc\nx"), script)
	assert.InDelta(t, 33.33, m.PercentChanged, 0.0001)
}

func TestComputeMetrics_BlocksChangedHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		oldLines int
		newLines int
		want     int
	}{
		{name: "same size", oldLines: 10, newLines: 10, want: 0},
		{name: "grew by a block", oldLines: 10, newLines: 15, want: 1},
		{name: "shrank by two blocks", oldLines: 20, newLines: 10, want: 2},
		{name: "sub-block growth", oldLines: 4, newLines: 7, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			old := wikilens.Snapshot{Label: "old", Lines: make([]string, tt.oldLines)}
			new := wikilens.Snapshot{Label: "new", Lines: make([]string, tt.newLines)}

			m := wikilens.ComputeMetrics(old, new, nil)
			assert.Equal(t, tt.want, m.BlocksChanged)
		})
	}
}

func TestComputeMetrics_CountsNeverExceedCombinedLines(t *testing.T) {
	t.Parallel()

	old := wikilens.NewSnapshot("old", "a\nb\nc\nd")
	new := wikilens.NewSnapshot("new", "w\nx\ny\nz\nq")
	script := linediff.Compute(old, new)

	m := wikilens.ComputeMetrics(old, new, script)
	assert.LessOrEqual(t, m.LinesAdded+m.LinesRemoved, len(old.Lines)+len(new.Lines))
	assert.GreaterOrEqual(t, m.PercentChanged, 0.0)
}
