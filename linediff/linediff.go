// Package linediff computes line-based diffs between snapshots using a
// longest-common-subsequence edit script with unified context.
package linediff

import (
	"github.com/wikilens/wikilens"
)

// contextLines is the number of unchanged lines kept around each change,
// matching conventional unified-diff semantics.
const contextLines = 3

// Compute returns the minimal edit script transforming old into new.
// Unchanged runs adjacent to changes are emitted as context operations;
// distant unchanged runs are omitted. Identical inputs yield an empty
// script. The result is deterministic: identical inputs always produce
// byte-identical output.
func Compute(old, new wikilens.Snapshot) wikilens.EditScript {
	a, b := old.Lines, new.Lines

	matches := lcsMatches(a, b)
	if len(matches) == len(a) && len(matches) == len(b) {
		return nil
	}

	// Build the full aligned op stream: removals before additions within
	// each replacement block, context lines numbered on both sides.
	ops := make(wikilens.EditScript, 0, len(a)+len(b))
	ai, bi := 0, 0
	for _, m := range matches {
		for ai < m.a {
			ops = append(ops, wikilens.EditOp{Kind: wikilens.OpRemove, Text: a[ai], OldLine: ai + 1})
			ai++
		}
		for bi < m.b {
			ops = append(ops, wikilens.EditOp{Kind: wikilens.OpAdd, Text: b[bi], NewLine: bi + 1})
			bi++
		}
		ops = append(ops, wikilens.EditOp{Kind: wikilens.OpContext, Text: a[m.a], OldLine: m.a + 1, NewLine: m.b + 1})
		ai, bi = m.a+1, m.b+1
	}
	for ai < len(a) {
		ops = append(ops, wikilens.EditOp{Kind: wikilens.OpRemove, Text: a[ai], OldLine: ai + 1})
		ai++
	}
	for bi < len(b) {
		ops = append(ops, wikilens.EditOp{Kind: wikilens.OpAdd, Text: b[bi], NewLine: bi + 1})
		bi++
	}

	return trimContext(ops)
}

type match struct{ a, b int }

// lcsMatches computes matching line positions via O(n·m) dynamic
// programming over a flat table, with deterministic tie-breaking during
// backtracking.
func lcsMatches(a, b []string) []match {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	table := make([]int, (m+1)*(n+1))
	stride := n + 1

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	matches := make([]match, 0, table[m*stride+n])
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			matches = append(matches, match{i - 1, j - 1})
			i--
			j--
		} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
			i--
		} else {
			j--
		}
	}

	for left, right := 0, len(matches)-1; left < right; left, right = left+1, right-1 {
		matches[left], matches[right] = matches[right], matches[left]
	}
	return matches
}

// trimContext keeps only context operations within contextLines of a
// change. Context ops map one-to-one to unchanged lines, so op-index
// distance equals line distance.
func trimContext(ops wikilens.EditScript) wikilens.EditScript {
	keep := make([]bool, len(ops))

	// Forward pass: distance since the last change.
	dist := contextLines + 1
	for i, op := range ops {
		if op.Kind != wikilens.OpContext {
			dist = 0
			keep[i] = true
			continue
		}
		dist++
		if dist <= contextLines {
			keep[i] = true
		}
	}

	// Backward pass: distance until the next change.
	dist = contextLines + 1
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Kind != wikilens.OpContext {
			dist = 0
			continue
		}
		dist++
		if dist <= contextLines {
			keep[i] = true
		}
	}

	trimmed := make(wikilens.EditScript, 0, len(ops))
	for i, op := range ops {
		if keep[i] {
			trimmed = append(trimmed, op)
		}
	}
	return trimmed
}
