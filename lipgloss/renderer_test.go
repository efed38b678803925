package lipgloss_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/lipgloss"
)

func TestRenderer_Metrics(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(nil)
	got := r.Metrics(wikilens.ChangeMetrics{
		LinesAdded:     2,
		LinesRemoved:   1,
		PercentChanged: 66.67,
		BlocksChanged:  0,
	})

	assert.Contains(t, got, "+2")
	assert.Contains(t, got, "-1")
	assert.Contains(t, got, "66.67%")
	assert.Contains(t, got, "added")
	assert.Contains(t, got, "removed")
	assert.Contains(t, got, "blocks")
}

func TestRenderer_Diff(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(lipgloss.LightTheme())
	diff := "--- v1\n+++ v2\n@@ -1,2 +1,2 @@\n a\n-b\n+x\n"

	got := r.Diff(diff)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "--- v1")
	assert.Contains(t, lines[2], "@@ -1,2 +1,2 @@")
	assert.Contains(t, lines[4], "-b")
	assert.Contains(t, lines[5], "+x")
}

func TestRenderer_Report(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(nil)
	rep := &wikilens.Report{
		OldLabel:        "v1",
		NewLabel:        "v2",
		Metrics:         wikilens.ChangeMetrics{LinesAdded: 2, LinesRemoved: 1, PercentChanged: 100},
		Diff:            "-a\n+b\n",
		Impact:          "impact body",
		Recommendations: "rec body",
		Risk:            "risk body",
		QALog:           []wikilens.QAEntry{{Question: "why?", Answer: "because"}},
	}

	got := r.Report(rep)

	assert.Contains(t, got, "Change Impact Report")
	assert.Contains(t, got, "v1 -> v2")
	assert.Contains(t, got, "Impact Analysis")
	assert.Contains(t, got, "impact body")
	assert.Contains(t, got, "Risk Assessment")
	assert.Contains(t, got, "Q: why?")
	assert.Contains(t, got, "because")
}

func TestRenderer_Report_SkipsEmptySections(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(nil)
	got := r.Report(&wikilens.Report{OldLabel: "a", NewLabel: "b"})

	assert.NotContains(t, got, "Impact Analysis")
	assert.NotContains(t, got, "rec body")
	assert.NotContains(t, got, "Q:")
}
