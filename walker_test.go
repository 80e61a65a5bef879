package htmlscrub_test

import (
	"strings"
	"testing"

	"github.com/njchilds90/htmlscrub"
	"golang.org/x/net/html"
)

// scrubFunc adapts a function to the Scrubber interface for tests.
type scrubFunc func(n *html.Node) htmlscrub.Directive

func (f scrubFunc) Scrub(n *html.Node) htmlscrub.Directive { return f(n) }

func mustScrub(t *testing.T, markup string, s htmlscrub.Scrubber) string {
	t.Helper()
	root, err := htmlscrub.ParseFragment(markup)
	if err != nil {
		t.Fatal(err)
	}
	htmlscrub.Walk(root, s)
	out, err := htmlscrub.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestWalk_ContinueKeepsEverything(t *testing.T) {
	keepAll := scrubFunc(func(n *html.Node) htmlscrub.Directive {
		return htmlscrub.DirectiveContinue
	})
	input := `<div id="d"><b>one</b> two</div>`
	got := mustScrub(t, input, keepAll)
	if got != input {
		t.Errorf("continue-only walk changed the tree: got %q want %q", got, input)
	}
}

func TestWalk_PruneRemovesSubtree(t *testing.T) {
	pruneDiv := scrubFunc(func(n *html.Node) htmlscrub.Directive {
		if n.Data == "div" {
			return htmlscrub.DirectivePrune
		}
		return htmlscrub.DirectiveContinue
	})
	got := mustScrub(t, `<b>keep</b><div><i>gone</i>deep</div>`, pruneDiv)
	if got != `<b>keep</b>` {
		t.Errorf("prune should remove the whole subtree: got %q", got)
	}
}

func TestWalk_StripSplicesChildrenInOrder(t *testing.T) {
	stripDiv := scrubFunc(func(n *html.Node) htmlscrub.Directive {
		if n.Data == "div" {
			return htmlscrub.DirectiveStrip
		}
		return htmlscrub.DirectiveContinue
	})
	got := mustScrub(t, `before<div><b>1</b>2<i>3</i></div>after`, stripDiv)
	want := `before<b>1</b>2<i>3</i>after`
	if got != want {
		t.Errorf("strip splice got %q want %q", got, want)
	}
}

// Spliced children must still be scrubbed: a stripped element directly
// inside another stripped element disappears as well.
func TestWalk_StripContinuesIntoSplicedChildren(t *testing.T) {
	s := &htmlscrub.PermitScrubber{Tags: []string{"b", "i"}}
	got := mustScrub(t, `<div><b>1</b><div><i>2</i></div>3</div>`, s)
	want := `<b>1</b><i>2</i>3`
	if got != want {
		t.Errorf("nested strip got %q want %q", got, want)
	}
}

func TestWalk_StopLeavesSubtreeAndAttributesUntouched(t *testing.T) {
	s := &stopDivScrubber{}
	input := `<div id="x"><span id="y">a</span></div><p id="z">b</p>`
	got := mustScrub(t, input, s)
	// div subtree keeps every attribute; p continues and loses its id.
	want := `<div id="x"><span id="y">a</span></div><p>b</p>`
	if got != want {
		t.Errorf("stop got %q want %q", got, want)
	}
}

// stopDivScrubber stops at div and removes all attributes elsewhere.
type stopDivScrubber struct{}

func (stopDivScrubber) Scrub(n *html.Node) htmlscrub.Directive {
	if n.Data == "div" {
		return htmlscrub.DirectiveStop
	}
	return htmlscrub.DirectiveContinue
}

func (stopDivScrubber) ScrubAttributes(n *html.Node) { n.Attr = nil }

// skipBScrubber prunes everything except nodes protected by SkipNode.
type skipBScrubber struct{}

func (skipBScrubber) Scrub(n *html.Node) htmlscrub.Directive { return htmlscrub.DirectivePrune }

func (skipBScrubber) SkipNode(n *html.Node) bool {
	return n.Type == html.TextNode || (n.Type == html.ElementNode && n.Data == "b")
}

func TestWalk_SkipNodeProtectsNode(t *testing.T) {
	got := mustScrub(t, `<b onclick="x">keep</b><i>gone</i>`, skipBScrubber{})
	want := `<b onclick="x">keep</b>`
	if got != want {
		t.Errorf("skipped node should survive untouched: got %q want %q", got, want)
	}
}

func TestWalk_TextAndCommentsAlwaysContinue(t *testing.T) {
	s := &htmlscrub.PermitScrubber{Tags: []string{}, Attributes: []string{}}
	got := mustScrub(t, `text<!--note--><b>more</b>`, s)
	want := `text<!--note-->more`
	if got != want {
		t.Errorf("non-element nodes must pass through: got %q want %q", got, want)
	}
}

func TestWalk_UnknownDirectivePanics(t *testing.T) {
	bad := scrubFunc(func(n *html.Node) htmlscrub.Directive {
		return htmlscrub.Directive(42)
	})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown directive")
		}
		if !strings.Contains(r.(string), "unknown directive") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	root, err := htmlscrub.ParseFragment(`<p>x</p>`)
	if err != nil {
		t.Fatal(err)
	}
	htmlscrub.Walk(root, bad)
}

func TestDirective_String(t *testing.T) {
	if got := htmlscrub.DirectiveStrip.String(); got != "strip" {
		t.Errorf("DirectiveStrip.String() = %q", got)
	}
	if got := htmlscrub.Directive(42).String(); got != "Directive(42)" {
		t.Errorf("unknown directive String() = %q", got)
	}
}
