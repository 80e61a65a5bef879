package htmlscrub

import (
	"fmt"

	"golang.org/x/net/html"
)

// Directive is a scrubber's decision for a single node.
type Directive int

const (
	// DirectiveContinue keeps the node, filters its attributes, and
	// descends into its children.
	DirectiveContinue Directive = iota

	// DirectiveStop keeps the node and its entire subtree untouched,
	// attributes included. The walk does not descend.
	DirectiveStop

	// DirectivePrune deletes the node together with its whole subtree.
	DirectivePrune

	// DirectiveStrip deletes the node but reparents its children into the
	// node's former position, in order. The walk continues over those
	// children, so they are still subject to scrubbing.
	DirectiveStrip
)

func (d Directive) String() string {
	switch d {
	case DirectiveContinue:
		return "continue"
	case DirectiveStop:
		return "stop"
	case DirectivePrune:
		return "prune"
	case DirectiveStrip:
		return "strip"
	}
	return fmt.Sprintf("Directive(%d)", int(d))
}

// Scrubber decides the fate of each element node during a [Walk].
// Implementations must be safe for reuse across independent walks; the
// built-in [PermitScrubber] and [TargetScrubber] hold no per-walk state.
type Scrubber interface {
	Scrub(n *html.Node) Directive
}

// NodeSkipper is an optional Scrubber capability consulted before Scrub.
// Returning true leaves the node and its subtree completely untouched,
// e.g. to protect text nodes unconditionally.
type NodeSkipper interface {
	SkipNode(n *html.Node) bool
}

// AttributeScrubber is an optional Scrubber capability invoked on every
// element kept with DirectiveContinue, to filter its attributes in place.
// A Scrubber without this capability leaves attributes as parsed.
type AttributeScrubber interface {
	ScrubAttributes(n *html.Node)
}

// Walk applies s to root's subtree in pre-order, mutating the tree in
// place according to the returned directives. Only element nodes are
// offered to the scrubber; text, comment, doctype, and document nodes
// always continue and are never attribute-filtered.
//
// Walk is mutation-safe: the continuation pointer for each node is
// captured before the node is visited, so a directive that detaches or
// splices the current node never invalidates the traversal. Walk never
// fails for a well-formed tree; it panics only if the scrubber returns
// an unrecognized Directive, which is a programming error.
func Walk(root *html.Node, s Scrubber) {
	walkNode(root, s)
}

// walkNode visits n and returns the node the caller should visit next.
// The continuation is resolved before any structural edit so a detached
// or spliced node is never dereferenced afterwards.
func walkNode(n *html.Node, s Scrubber) *html.Node {
	next := n.NextSibling

	if sk, ok := s.(NodeSkipper); ok && sk.SkipNode(n) {
		return next
	}

	d := DirectiveContinue
	if n.Type == html.ElementNode {
		d = s.Scrub(n)
	}

	switch d {
	case DirectiveContinue:
		if n.Type == html.ElementNode {
			if as, ok := s.(AttributeScrubber); ok {
				as.ScrubAttributes(n)
			}
		}
		for c := n.FirstChild; c != nil; {
			c = walkNode(c, s)
		}
		return next

	case DirectiveStop:
		return next

	case DirectivePrune:
		detach(n)
		return next

	case DirectiveStrip:
		if first := spliceChildren(n); first != nil {
			return first
		}
		return next

	default:
		panic(fmt.Sprintf("htmlscrub: scrubber returned unknown directive %d", int(d)))
	}
}
