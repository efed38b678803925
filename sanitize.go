package wikilens

import (
	"regexp"
	"strings"
)

// MaxPromptChars bounds any text sent to a narrative generator or handed
// to an export encoder.
const MaxPromptChars = 10000

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// SanitizePrompt strips markup tags and characters outside the 7-bit
// printable range (newlines and tabs survive), then truncates the result
// to MaxPromptChars. Applied uniformly to diff text and to any externally
// fetched content before it is injected into a prompt.
func SanitizePrompt(s string) string {
	s = tagPattern.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || (r >= 0x20 && r < 0x7f) {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > MaxPromptChars {
		out = out[:MaxPromptChars]
	}
	return out
}
