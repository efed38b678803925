package confluence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens/confluence"
)

func TestCleanHTML(t *testing.T) {
	t.Parallel()

	got := confluence.CleanHTML("<h1>Title</h1><p>First paragraph.</p><p>Second.</p>")
	assert.Equal(t, "Title\nFirst paragraph.\nSecond.", got)
}

func TestCleanHTML_PlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "just text", confluence.CleanHTML("just text"))
}

func TestExtractCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "pre block",
			content: "<p>intro</p><pre>def main():\n    pass</pre>",
			want:    "def main():\n    pass",
		},
		{
			name:    "code block",
			content: "<div><code>x = 1</code></div>",
			want:    "x = 1",
		},
		{
			name:    "no code falls back to text",
			content: "<p>only prose</p>",
			want:    "only prose",
		},
		{
			name:    "empty pre skipped",
			content: "<pre>   </pre><code>real()</code>",
			want:    "real()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, confluence.ExtractCode(tt.content))
		})
	}
}

func TestExtractCodeMacros(t *testing.T) {
	t.Parallel()

	content := `<p>doc</p>` +
		`<ac:structured-macro ac:name="code"><ac:plain-text-body>first()</ac:plain-text-body></ac:structured-macro>` +
		`<ac:structured-macro ac:name="info"><ac:plain-text-body>not code</ac:plain-text-body></ac:structured-macro>` +
		`<ac:structured-macro ac:name="code"><ac:plain-text-body>second()</ac:plain-text-body></ac:structured-macro>`

	assert.Equal(t, "first()\nsecond()", confluence.ExtractCodeMacros(content))
}

func TestExtractCodeMacros_CDATA(t *testing.T) {
	t.Parallel()

	content := `<ac:structured-macro ac:name="code"><ac:plain-text-body><![CDATA[if x < 1 { return }]]></ac:plain-text-body></ac:structured-macro>`

	assert.Equal(t, "if x < 1 { return }", confluence.ExtractCodeMacros(content))
}

func TestExtractCodeMacros_NoMacros(t *testing.T) {
	t.Parallel()

	assert.Empty(t, confluence.ExtractCodeMacros("<p>nothing here</p>"))
}
