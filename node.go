package htmlscrub

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses markup as an HTML body fragment and returns a
// container node whose children are the fragment's top-level nodes.
// The container is suitable for passing to [Walk] and [Render]. Parsing
// is tolerant: malformed markup is repaired by the parser, not rejected.
func ParseFragment(markup string) (*html.Node, error) {
	return parseFragment(strings.NewReader(markup))
}

func parseFragment(r io.Reader) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// Render serializes the children of root back to an HTML string.
func Render(root *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// detach removes n, together with its subtree, from its parent.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// spliceChildren moves n's children into n's position under its parent,
// preserving their order, then removes n itself. It returns the first
// reparented child, or nil if n had none (or no parent to splice into).
func spliceChildren(n *html.Node) *html.Node {
	parent := n.Parent
	if parent == nil {
		return nil
	}
	first := n.FirstChild
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
	return first
}
