package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/export"
)

func TestByFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format      string
		ext         string
		contentType string
	}{
		{"txt", ".txt", "text/plain"},
		{"md", ".md", "text/markdown"},
		{"markdown", ".md", "text/markdown"},
		{"html", ".html", "text/html"},
		{"csv", ".csv", "text/csv"},
		{"json", ".json", "application/json"},
		{"pdf", ".pdf", "application/pdf"},
		{".TXT", ".txt", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			enc, err := export.ByFormat(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, enc.Ext())
			assert.Equal(t, tt.contentType, enc.ContentType())
		})
	}
}

func TestByFormat_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := export.ByFormat("docx")
	assert.Error(t, err)
}

func TestText_Encode(t *testing.T) {
	t.Parallel()

	data, err := export.Text{}.Encode("hello\nworld")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", string(data))
}

func TestHTML_Encode_Escapes(t *testing.T) {
	t.Parallel()

	data, err := export.HTML{}.Encode("if x < 1 && y > 2")
	require.NoError(t, err)

	got := string(data)
	assert.Contains(t, got, "if x &lt; 1 &amp;&amp; y &gt; 2")
	assert.Contains(t, got, "<pre>")
	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
}

func TestCSV_Encode(t *testing.T) {
	t.Parallel()

	data, err := export.CSV{}.Encode("first\nsecond, with comma")
	require.NoError(t, err)
	assert.Equal(t, "report\nfirst\n\"second, with comma\"\n", string(data))
}

func TestJSON_Encode(t *testing.T) {
	t.Parallel()

	data, err := export.JSON{}.Encode("report body")
	require.NoError(t, err)
	assert.JSONEq(t, `{"report":"report body"}`, string(data))
}

func TestPDF_Encode(t *testing.T) {
	t.Parallel()

	data, err := export.PDF{}.Encode("Risk: \U0001f7e2 Low\naccented: café\ncjk: 世界")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestMarkdownReport(t *testing.T) {
	t.Parallel()

	r := &wikilens.Report{
		OldLabel: "v1",
		NewLabel: "v2",
		Diff:     "--- v1\n+++ v2\n@@ -1,1 +1,1 @@\n-a\n+b\n",
		Metrics: wikilens.ChangeMetrics{
			LinesAdded:     2,
			LinesRemoved:   1,
			PercentChanged: 100,
			BlocksChanged:  0,
		},
		Impact:          "impact text",
		Recommendations: "recommendation text",
		Risk:            "risk is \U0001f7e2 Low",
		QALog: []wikilens.QAEntry{
			{Question: "why?", Answer: "because"},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := export.MarkdownReport(r)

	assert.Contains(t, doc, "# Change Impact Report")
	assert.Contains(t, doc, "**Old:** v1")
	assert.Contains(t, doc, "**New:** v2")
	assert.Contains(t, doc, "- Lines added: 2")
	assert.Contains(t, doc, "- Percent changed: 100.00%")
	assert.Contains(t, doc, "```diff\n--- v1")
	assert.Contains(t, doc, "## Impact Analysis\n\nimpact text")
	assert.Contains(t, doc, "## Risk Assessment\n\nrisk is \U0001f7e2 Low")
	assert.Contains(t, doc, "**Q:** why?")
	assert.Contains(t, doc, "**A:** because")
}

func TestMarkdownReport_EmptySections(t *testing.T) {
	t.Parallel()

	doc := export.MarkdownReport(&wikilens.Report{OldLabel: "a", NewLabel: "b"})

	assert.NotContains(t, doc, "## Diff")
	assert.NotContains(t, doc, "## Impact Analysis")
	assert.NotContains(t, doc, "## Q&A")
	assert.Contains(t, doc, "## Metrics")
}
