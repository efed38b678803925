package chroma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikilens/wikilens/chroma"
)

func TestDetector_DetectFromContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"xml declaration", `<?xml version="1.0"?><root/>`, "xml"},
		{"html document", "<!DOCTYPE html>\n<html><body></body></html>", "html"},
		{"html lowercase tag", "<HTML><head></head></HTML>", "html"},
		{"json object", `  {"key": "value"}`, "json"},
		{"json array", `[1, 2, 3]`, "json"},
		{"java class", "public class Main {\n  public static void main(String[] args) {}\n}", "java"},
		{"cpp include", "#include <stdio.h>\nint main() { return 0; }", "cpp"},
		{"python def", "def main():\n    pass", "python"},
		{"javascript arrow", "const add = (a, b) => a + b", "javascript"},
		{"javascript function", "function add(a, b) { return a + b }", "javascript"},
		{"plain prose", "meeting notes from tuesday", "text"},
	}

	d := chroma.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, d.DetectFromContent(tt.content))
		})
	}
}

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"a/script.py", "python"},
		{"b/index.ts", "typescript"},
		{"README.noext.unknown", ""},
	}

	d := chroma.NewDetector()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, d.DetectFromPath(tt.path))
		})
	}
}
