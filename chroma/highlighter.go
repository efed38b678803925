package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Highlighter renders source code with ANSI colors for terminal output.
type Highlighter struct {
	style string
}

// HighlighterOption configures a Highlighter.
type HighlighterOption func(*Highlighter)

// WithStyle sets the chroma style name.
func WithStyle(name string) HighlighterOption {
	return func(h *Highlighter) { h.style = name }
}

// NewHighlighter creates a terminal highlighter.
func NewHighlighter(opts ...HighlighterOption) *Highlighter {
	h := &Highlighter{style: DefaultStyle}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Highlight colorizes source for the given language. On any failure the
// source is returned unstyled; highlighting is cosmetic and must never
// block output.
func (h *Highlighter) Highlight(source, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chromalib.Coalesce(lexer)

	style := styles.Get(h.style)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := formatters.Get("terminal256").Format(&b, style, iterator); err != nil {
		return source
	}
	return b.String()
}
