package chroma_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens/chroma"
)

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter()
	source := "def main():\n    pass"

	got := h.Highlight(source, "python")

	// ANSI escapes wrap the original text.
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "main")
}

func TestHighlighter_Highlight_UnknownLanguage(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter()
	got := h.Highlight("just some words", "definitely-not-a-language")

	assert.Contains(t, got, "just some words")
	assert.Equal(t, "just some words", stripANSI(got))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
