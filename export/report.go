package export

import (
	"fmt"
	"strings"

	"github.com/wikilens/wikilens"
)

// MarkdownReport renders a report as the canonical markdown document that
// the encoders consume.
func MarkdownReport(r *wikilens.Report) string {
	var b strings.Builder

	b.WriteString("# Change Impact Report\n\n")
	fmt.Fprintf(&b, "**Old:** %s  \n", r.OldLabel)
	fmt.Fprintf(&b, "**New:** %s  \n", r.NewLabel)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "**Generated:** %s  \n", r.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	}

	b.WriteString("\n## Metrics\n\n")
	fmt.Fprintf(&b, "- Lines added: %d\n", r.Metrics.LinesAdded)
	fmt.Fprintf(&b, "- Lines removed: %d\n", r.Metrics.LinesRemoved)
	fmt.Fprintf(&b, "- Percent changed: %.2f%%\n", r.Metrics.PercentChanged)
	fmt.Fprintf(&b, "- Blocks changed: %d\n", r.Metrics.BlocksChanged)

	if r.Diff != "" {
		b.WriteString("\n## Diff\n\n```diff\n")
		b.WriteString(strings.TrimRight(r.Diff, "\n"))
		b.WriteString("\n```\n")
	}

	writeSection(&b, "Impact Analysis", r.Impact)
	writeSection(&b, "Recommendations", r.Recommendations)
	writeSection(&b, "Risk Assessment", r.Risk)

	if len(r.QALog) > 0 {
		b.WriteString("\n## Q&A\n")
		for _, entry := range r.QALog {
			fmt.Fprintf(&b, "\n**Q:** %s\n\n**A:** %s\n", entry.Question, entry.Answer)
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n%s\n", title, strings.TrimRight(body, "\n"))
}
