// Package export renders finished report text into downloadable payloads.
// Each encoder maps one output format; all of them accept arbitrary
// Unicode and degrade rather than fail on characters a format cannot
// represent.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var (
	_ wikilens.Encoder = (*Text)(nil)
	_ wikilens.Encoder = (*Markdown)(nil)
	_ wikilens.Encoder = (*HTML)(nil)
	_ wikilens.Encoder = (*CSV)(nil)
	_ wikilens.Encoder = (*JSON)(nil)
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Text encodes the report as plain UTF-8 text.
type Text struct{}

func (Text) Encode(text string) ([]byte, error) { return []byte(text), nil }
func (Text) ContentType() string                { return "text/plain" }
func (Text) Ext() string                        { return ".txt" }

// Markdown encodes the report as-is; report text is already markdown.
type Markdown struct{}

func (Markdown) Encode(text string) ([]byte, error) { return []byte(text), nil }
func (Markdown) ContentType() string                { return "text/markdown" }
func (Markdown) Ext() string                        { return ".md" }

// HTML wraps the report in a minimal standalone page, escaping the text
// and preserving layout in a pre block.
type HTML struct{}

func (HTML) Encode(text string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Change Report</title>\n</head>\n<body>\n<pre>")
	buf.WriteString(html.EscapeString(text))
	buf.WriteString("</pre>\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

func (HTML) ContentType() string { return "text/html" }
func (HTML) Ext() string         { return ".html" }

// CSV encodes the report one line per row under a single "report" column.
type CSV struct{}

func (CSV) Encode(text string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"report"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, line := range strings.Split(text, "\n") {
		if err := w.Write([]string{line}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (CSV) ContentType() string { return "text/csv" }
func (CSV) Ext() string         { return ".csv" }

// JSON encodes the report text as a single-field JSON document.
type JSON struct{}

func (JSON) Encode(text string) ([]byte, error) {
	payload := struct {
		Report string `json:"report"`
	}{Report: text}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

func (JSON) ContentType() string { return "application/json" }
func (JSON) Ext() string         { return ".json" }

// ByFormat returns the encoder for a format name such as "txt" or "pdf".
func ByFormat(format string) (wikilens.Encoder, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "txt", "text":
		return Text{}, nil
	case "md", "markdown":
		return Markdown{}, nil
	case "html":
		return HTML{}, nil
	case "csv":
		return CSV{}, nil
	case "json":
		return JSON{}, nil
	case "pdf":
		return PDF{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Formats lists the supported format names in display order.
func Formats() []string {
	return []string{"txt", "md", "html", "csv", "json", "pdf"}
}
