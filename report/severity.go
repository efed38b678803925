package report

import "regexp"

var severityPattern = regexp.MustCompile(`\b(Low|Medium|High)\b`)

var severityMarkers = map[string]string{
	"Low":    "\U0001f7e2 Low",
	"Medium": "\U0001f7e1 Medium",
	"High":   "\U0001f534 High",
}

// TagSeverities prefixes bare severity tokens with a colored marker.
// Matching is whole-word only, so "Lowest" is left untouched, and the
// token text itself is preserved.
func TagSeverities(s string) string {
	return severityPattern.ReplaceAllStringFunc(s, func(m string) string {
		return severityMarkers[m]
	})
}
