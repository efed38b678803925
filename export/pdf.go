package export

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/wikilens/wikilens"
)

var _ wikilens.Encoder = (*PDF)(nil)

// PDF encodes the report as an A4 document using the built-in core fonts.
// Core fonts only cover latin-1, so each line is degraded first: emoji and
// other symbols are stripped, remaining unrepresentable runes become "?".
type PDF struct{}

func (PDF) Encode(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Change Report", true)
	doc.AddPage()
	doc.SetFont("Courier", "", 9)

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	width := pageWidth - left - right

	for _, line := range strings.Split(text, "\n") {
		doc.MultiCell(width, 4.5, latin1Line(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (PDF) ContentType() string { return "application/pdf" }
func (PDF) Ext() string         { return ".pdf" }

// latin1Line reduces a line to characters the PDF core fonts can render.
func latin1Line(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		switch {
		case r == '\t':
			b.WriteString("    ")
		case r < 0x20:
			// skip control characters
		case r <= 0xff:
			b.WriteRune(r)
		case unicode.IsSymbol(r):
			// emoji and dingbats carry no information worth a "?"
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
