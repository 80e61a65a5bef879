package htmlscrub

import (
	"strings"

	"golang.org/x/net/html"
)

// TextOptions configures SanitizeFullText.
type TextOptions struct {
	// PreserveWhitespace keeps line structure: block-level elements are
	// bounded by line breaks and <br> emits one. When false (default)
	// tags are elided with no compensating whitespace.
	PreserveWhitespace bool
}

// extractText reduces root's subtree to plain text in document order.
// Text node content is emitted verbatim. In preserve mode a block
// element's children are bounded by line breaks (only added when the
// output does not already end in one), a line-break element emits
// exactly one line break, and inline elements contribute nothing.
func extractText(root *html.Node, preserve bool) string {
	var b strings.Builder
	emitText(&b, root, preserve)
	return b.String()
}

func emitText(b *strings.Builder, n *html.Node, preserve bool) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if preserve {
			tag := strings.ToLower(n.Data)
			if lineBreakElements[tag] {
				b.WriteByte('\n')
				return
			}
			if blockElements[tag] {
				ensureLineBreak(b)
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					emitText(b, c, preserve)
				}
				ensureLineBreak(b)
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		emitText(b, c, preserve)
	}
}

func ensureLineBreak(b *strings.Builder) {
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
}
