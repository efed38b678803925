package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wikilens/wikilens"
)

// Renderer renders reports as styled terminal output.
type Renderer struct {
	theme *Theme

	heading    lipgloss.Style
	added      lipgloss.Style
	removed    lipgloss.Style
	context    lipgloss.Style
	hunkHeader lipgloss.Style
	fileHeader lipgloss.Style
	muted      lipgloss.Style
	metricCell lipgloss.Style
	board      lipgloss.Style
}

// NewRenderer creates a Renderer for the given theme. A nil theme uses
// the default.
func NewRenderer(theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{
		theme:      theme,
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Heading)),
		added:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Added)),
		removed:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Removed)),
		context:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Context)),
		hunkHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HunkHeader)),
		fileHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.FileHeader)),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)),
		metricCell: lipgloss.NewStyle().Padding(0, 2).Align(lipgloss.Center),
		board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)),
	}
}

// Metrics renders the change metrics as a bordered dashboard row.
func (r *Renderer) Metrics(m wikilens.ChangeMetrics) string {
	cells := []string{
		r.metricCell.Render(r.added.Render(fmt.Sprintf("+%d", m.LinesAdded)) + "\n" + r.muted.Render("added")),
		r.metricCell.Render(r.removed.Render(fmt.Sprintf("-%d", m.LinesRemoved)) + "\n" + r.muted.Render("removed")),
		r.metricCell.Render(fmt.Sprintf("%.2f%%", m.PercentChanged) + "\n" + r.muted.Render("changed")),
		r.metricCell.Render(fmt.Sprintf("%d", m.BlocksChanged) + "\n" + r.muted.Render("blocks")),
	}
	return r.board.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// Diff colorizes a unified diff line by line.
func (r *Renderer) Diff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			out[i] = r.fileHeader.Render(line)
		case strings.HasPrefix(line, "@@"):
			out[i] = r.hunkHeader.Render(line)
		case strings.HasPrefix(line, "+"):
			out[i] = r.added.Render(line)
		case strings.HasPrefix(line, "-"):
			out[i] = r.removed.Render(line)
		default:
			out[i] = r.context.Render(line)
		}
	}
	return strings.Join(out, "\n")
}

// Section renders a titled narrative block.
func (r *Renderer) Section(title, body string) string {
	return r.heading.Render(title) + "\n\n" + strings.TrimRight(body, "\n")
}

// Report renders the full report: header, metrics dashboard, diff, and
// narrative sections.
func (r *Renderer) Report(rep *wikilens.Report) string {
	var parts []string

	parts = append(parts, r.heading.Render("Change Impact Report"))
	parts = append(parts, r.muted.Render(fmt.Sprintf("%s -> %s", rep.OldLabel, rep.NewLabel)))
	parts = append(parts, r.Metrics(rep.Metrics))

	if rep.Diff != "" {
		parts = append(parts, r.Section("Diff", r.Diff(rep.Diff)))
	}
	if rep.Impact != "" {
		parts = append(parts, r.Section("Impact Analysis", rep.Impact))
	}
	if rep.Recommendations != "" {
		parts = append(parts, r.Section("Recommendations", rep.Recommendations))
	}
	if rep.Risk != "" {
		parts = append(parts, r.Section("Risk Assessment", rep.Risk))
	}
	for _, entry := range rep.QALog {
		parts = append(parts, r.Section("Q: "+entry.Question, entry.Answer))
	}

	return strings.Join(parts, "\n\n")
}
