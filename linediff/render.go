package linediff

import (
	"fmt"
	"strings"

	"github.com/wikilens/wikilens"
)

// Render produces unified-diff text for a script computed by Compute.
// The file-pair preamble and hunk headers are markers only; they never
// count toward change metrics. An empty script renders as an empty string.
func Render(old, new wikilens.Snapshot, script wikilens.EditScript) string {
	if len(script) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", old.Label)
	fmt.Fprintf(&sb, "+++ %s\n", new.Label)

	for _, h := range splitHunks(script) {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.oldStart, h.oldCount, h.newStart, h.newCount)
		for _, op := range h.ops {
			sb.WriteString(opPrefix(op.Kind))
			sb.WriteString(op.Text)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	ops                wikilens.EditScript
}

// splitHunks groups a trimmed script into hunks at discontinuities in the
// old-side line numbering. Additions carry no old-side number and never
// open a gap on their own.
func splitHunks(script wikilens.EditScript) []hunk {
	var hunks []hunk
	var cur *hunk
	prevOld := 0

	for _, op := range script {
		gap := op.OldLine > 0 && prevOld > 0 && op.OldLine > prevOld+1
		if cur == nil || gap {
			hunks = append(hunks, hunk{})
			cur = &hunks[len(hunks)-1]
		}
		cur.ops = append(cur.ops, op)

		if op.OldLine > 0 {
			if cur.oldStart == 0 {
				cur.oldStart = op.OldLine
			}
			cur.oldCount++
			prevOld = op.OldLine
		}
		if op.NewLine > 0 {
			if cur.newStart == 0 {
				cur.newStart = op.NewLine
			}
			cur.newCount++
		}
	}

	return hunks
}

func opPrefix(k wikilens.OpKind) string {
	switch k {
	case wikilens.OpAdd:
		return "+"
	case wikilens.OpRemove:
		return "-"
	default:
		return " "
	}
}
