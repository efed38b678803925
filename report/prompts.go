package report

import (
	"fmt"

	"github.com/wikilens/wikilens"
)

// FallbackPrompt is substituted after every attempt at a section prompt
// has failed. Its result is used as-is, without further retries.
const FallbackPrompt = "Explain this code change or answer a general question about code quality."

func impactPrompt(diff string) string {
	return "Analyze this code diff and explain the impact:\n\n" + diff
}

func recommendationsPrompt(diff string) string {
	return "As a senior engineer, suggest improvements for this diff:\n\n" + diff
}

func riskPrompt(diff string) string {
	return "Assess the risk of each change in this code diff with severity tags (Low, Medium, High):\n\n" + diff
}

func qaPrompt(context, question string) string {
	return fmt.Sprintf(
		"You are an expert AI assistant. Based on the report below, answer the user's question clearly.\n\n%s\n\nQuestion: %s\n\nAnswer:",
		context, question)
}

func metricsLine(m wikilens.ChangeMetrics) string {
	return fmt.Sprintf("Changes: +%d, -%d, ~%.2f%%", m.LinesAdded, m.LinesRemoved, m.PercentChanged)
}
