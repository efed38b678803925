package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/wikilens/wikilens"
)

// TestAdvisor generates test strategies, cross-platform test plans, and
// data sensitivity classifications for code and sample data.
type TestAdvisor struct {
	gen wikilens.Generator
}

// NewTestAdvisor creates a TestAdvisor.
func NewTestAdvisor(gen wikilens.Generator) *TestAdvisor {
	return &TestAdvisor{gen: gen}
}

// Strategy proposes test strategies and cases for a code snippet.
func (a *TestAdvisor) Strategy(ctx context.Context, code string) (string, error) {
	prompt := fmt.Sprintf(
		"The following is a code snippet:\n\n%s\n\n"+
			"Based on this, please generate appropriate test strategies and detailed test cases. "+
			"Mention types of testing (unit, integration, regression), areas that require special attention, and possible edge cases.",
		code,
	)
	return a.generate(ctx, prompt)
}

// CrossPlatform proposes device and viewport test plans for frontend code.
func (a *TestAdvisor) CrossPlatform(ctx context.Context, code string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a cross-platform UI testing expert. Analyze the following frontend code and generate detailed test strategies. Code:\n%s\n\n"+
			"Include: - Desktop, Mobile Web, Tablet test cases - UI/viewport issues - Framework/tool suggestions",
		code,
	)
	return a.generate(ctx, prompt)
}

// Sensitivity classifies sensitive fields in sample data and suggests
// masking.
func (a *TestAdvisor) Sensitivity(ctx context.Context, data string) (string, error) {
	prompt := fmt.Sprintf(
		"You are a data privacy expert. Classify sensitive fields (PII, credentials, financial) and provide masking suggestions.\n\nData:\n%s",
		data,
	)
	return a.generate(ctx, prompt)
}

// Chat answers a follow-up question grounded in the three analysis
// sections produced earlier.
func (a *TestAdvisor) Chat(ctx context.Context, strategy, crossPlatform, sensitivity, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question must not be empty")
	}

	prompt := fmt.Sprintf(
		"Based on the following content:\n"+
			"Test Strategy:\n%s\n"+
			"Cross-Platform Testing:\n%s\n"+
			"Sensitivity Analysis:\n%s\n\n"+
			"Answer this user query: %q",
		strategy, crossPlatform, sensitivity, question,
	)
	return a.generate(ctx, prompt)
}

func (a *TestAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	out, err := a.gen.Generate(ctx, wikilens.SanitizePrompt(prompt))
	if err != nil {
		return "", fmt.Errorf("generate advice: %w", err)
	}
	return strings.TrimSpace(out), nil
}
