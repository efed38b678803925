package confluence

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanHTML extracts readable text from storage-format HTML, separating
// text nodes with newlines.
func CleanHTML(content string) string {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	var parts []string
	walk(root, func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
	})
	return strings.Join(parts, "\n")
}

// ExtractCode returns the text of the first non-empty <pre> or <code>
// element, falling back to the cleaned page text when the page has no
// code blocks.
func ExtractCode(content string) string {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	var code string
	walk(root, func(n *html.Node) {
		if code != "" || n.Type != html.ElementNode {
			return
		}
		if n.Data == "pre" || n.Data == "code" {
			if text := nodeText(n); strings.TrimSpace(text) != "" {
				code = text
			}
		}
	})
	if code != "" {
		return code
	}
	return strings.TrimSpace(CleanHTML(content))
}

// ExtractCodeMacros returns the plain-text bodies of Confluence code
// macros (<ac:structured-macro ac:name="code">) joined by newlines. Pages
// store macro bodies as CDATA, which the HTML parser surfaces as comment
// nodes; both forms are handled.
func ExtractCodeMacros(content string) string {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var blocks []string
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "ac:structured-macro" {
			return
		}
		if attr(n, "ac:name") != "code" {
			return
		}
		walk(n, func(body *html.Node) {
			if body.Type == html.ElementNode && body.Data == "ac:plain-text-body" {
				if text := nodeText(body); text != "" {
					blocks = append(blocks, text)
				}
			}
		})
	})
	return strings.Join(blocks, "\n")
}

// walk visits n and all descendants in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// nodeText collects the text content of a node, unwrapping CDATA sections
// that the parser represents as comments.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.CommentNode:
			if data, ok := strings.CutPrefix(c.Data, "[CDATA["); ok {
				sb.WriteString(strings.TrimSuffix(data, "]]"))
			}
		}
	})
	return sb.String()
}

// attr returns the value of the named attribute, or empty.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
