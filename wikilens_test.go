package wikilens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens"
)

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain lines",
			text: "a\nb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "trailing newline is not an extra line",
			text: "a\nb\nc\n",
			want: []string{"a", "b", "c"},
		},
		{
			name: "windows line endings",
			text: "a\r\nb\r\nc\r\n",
			want: []string{"a", "b", "c"},
		},
		{
			name: "bare carriage returns",
			text: "a\rb",
			want: []string{"a", "b"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "single newline",
			text: "\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := wikilens.NewSnapshot("label", tt.text)
			assert.Equal(t, tt.want, snap.Lines)
			assert.Equal(t, "label", snap.Label)
		})
	}
}

func TestSnapshot_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, wikilens.NewSnapshot("x", "").Empty())
	assert.False(t, wikilens.NewSnapshot("x", "a").Empty())
}

func TestEditScript_Counts(t *testing.T) {
	t.Parallel()

	script := wikilens.EditScript{
		{Kind: wikilens.OpContext, Text: "a"},
		{Kind: wikilens.OpAdd, Text: "x"},
		{Kind: wikilens.OpAdd, Text: "y"},
		{Kind: wikilens.OpRemove, Text: "b"},
	}

	added, removed := script.Counts()
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
	assert.True(t, script.Changed())

	var empty wikilens.EditScript
	assert.False(t, empty.Changed())
}
