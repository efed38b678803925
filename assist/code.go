package assist

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wikilens/wikilens"
)

// ErrSameLanguage is returned when a conversion targets the language the
// code is already in.
var ErrSameLanguage = errors.New("source and target language are the same")

var fencePattern = regexp.MustCompile("(?m)^```[a-zA-Z]*\n|```$")

// StripCodeFences removes markdown code fences a generator tends to wrap
// code responses in.
func StripCodeFences(text string) string {
	return fencePattern.ReplaceAllString(strings.TrimSpace(text), "")
}

// CodeAssistant summarizes, modifies, and converts code snippets pulled
// from wiki pages.
type CodeAssistant struct {
	gen    wikilens.Generator
	detect wikilens.LanguageDetector
}

// NewCodeAssistant creates a CodeAssistant.
func NewCodeAssistant(gen wikilens.Generator, detect wikilens.LanguageDetector) *CodeAssistant {
	return &CodeAssistant{gen: gen, detect: detect}
}

// DetectLanguage guesses the language of a content snippet.
func (c *CodeAssistant) DetectLanguage(content string) string {
	return c.detect.DetectFromContent(content)
}

// Summarize produces a paragraph summary of page content.
func (c *CodeAssistant) Summarize(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(
		"The following is content (possibly code or structure) from a Confluence page:\n\n%s\n\n"+
			"Summarize in detailed paragraph",
		content,
	)
	summary, err := c.gen.Generate(ctx, wikilens.SanitizePrompt(prompt))
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// Modify applies a natural-language instruction to a code snippet and
// returns the modified code with fences stripped.
func (c *CodeAssistant) Modify(ctx context.Context, code, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", fmt.Errorf("instruction must not be empty")
	}

	prompt := fmt.Sprintf(
		"The following is a piece of code extracted from a Confluence page:\n\n%s\n\n"+
			"Please modify this code according to the following instruction:\n'%s'\n\n"+
			"Return the modified code only. No explanation or extra text.",
		code, instruction,
	)
	modified, err := c.gen.Generate(ctx, wikilens.SanitizePrompt(prompt))
	if err != nil {
		return "", fmt.Errorf("generate modification: %w", err)
	}
	return StripCodeFences(modified), nil
}

// Convert translates a code snippet into targetLang. The source language
// is detected from the snippet; converting to the same language is an
// error.
func (c *CodeAssistant) Convert(ctx context.Context, code, targetLang string) (string, error) {
	if strings.TrimSpace(targetLang) == "" {
		return "", fmt.Errorf("target language must not be empty")
	}
	if strings.EqualFold(c.detect.DetectFromContent(code), targetLang) {
		return "", ErrSameLanguage
	}

	prompt := fmt.Sprintf(
		"The following is a code structure or data snippet:\n\n%s\n\n"+
			"Convert this into equivalent %s code. Only show the converted code.",
		code, targetLang,
	)
	converted, err := c.gen.Generate(ctx, wikilens.SanitizePrompt(prompt))
	if err != nil {
		return "", fmt.Errorf("generate conversion: %w", err)
	}
	return StripCodeFences(converted), nil
}
