// Package chroma provides language detection and syntax highlighting
// using the chroma library.
package chroma

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.LanguageDetector = (*Detector)(nil)

var javaClassPattern = regexp.MustCompile(`\bclass\s+\w+`)

// Detector guesses programming languages from content or file paths.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromContent guesses the language of a snippet. Cheap marker
// checks run first; chroma's content analysis breaks ties. Returns
// "text" when nothing matches.
func (d *Detector) DetectFromContent(content string) string {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(content)

	switch {
	case strings.Contains(content, "<?xml"):
		return "xml"
	case strings.Contains(lower, "<html") || strings.Contains(content, "<!DOCTYPE html>"):
		return "html"
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		return "json"
	case javaClassPattern.MatchString(content) && strings.Contains(content, "public"):
		return "java"
	case strings.Contains(content, "#include"):
		return "cpp"
	case strings.Contains(content, "def "):
		return "python"
	case strings.Contains(content, "function") || strings.Contains(content, "=>"):
		return "javascript"
	}

	if lexer := lexers.Analyse(content); lexer != nil {
		return strings.ToLower(lexer.Config().Name)
	}
	return "text"
}

// DetectFromPath returns the language name for the given path, or an
// empty string if the language cannot be determined. Strips "a/" or
// "b/" prefixes common in diff output.
func (d *Detector) DetectFromPath(path string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return strings.ToLower(lexer.Config().Name)
}
