package htmlscrub

import (
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// AttrValidator decides whether a single attribute survives on a node.
// When a validator is configured for a tag it replaces the attribute
// name allow-list for that tag; URI and style value checks still apply
// to whatever it accepts.
type AttrValidator func(n *html.Node, attr html.Attribute) bool

// PermitScrubber keeps only the elements named in its allow-list.
// Elements outside the list are stripped (tag removed, children kept in
// place), or pruned together with their subtree when Prune is set. An
// empty Tags list therefore reduces the tree to bare text.
//
// A PermitScrubber is safe for concurrent reuse across independent
// walks provided its fields are not mutated after first use.
type PermitScrubber struct {
	// Tags is the element allow-list, matched case-insensitively.
	Tags []string

	// Attributes is the attribute allow-list applied uniformly to every
	// kept element. nil selects the default attribute safelist; a non-nil
	// empty list permits no attributes at all.
	Attributes []string

	// Schemes are URI schemes accepted in reference-bearing attributes
	// in addition to the defaults (http, https, mailto).
	Schemes []string

	// Prune removes disallowed elements together with their subtree
	// instead of stripping the tag only.
	Prune bool

	// AttrValidators maps a tag name to a validator that replaces the
	// attribute name allow-list for that tag.
	AttrValidators map[string]AttrValidator

	once    sync.Once
	tags    map[string]bool
	attrs   map[string]bool
	schemes map[string]bool
}

func (s *PermitScrubber) init() {
	s.once.Do(func() {
		s.tags = sliceToSet(s.Tags)
		if s.Attributes == nil {
			s.attrs = defaultSafelist.Attributes
		} else {
			s.attrs = sliceToSet(s.Attributes)
		}
		s.schemes = make(map[string]bool, len(s.Schemes)+len(defaultSafelist.URISchemes))
		for k := range defaultSafelist.URISchemes {
			s.schemes[k] = true
		}
		for _, v := range s.Schemes {
			s.schemes[strings.ToLower(v)] = true
		}
	})
}

// Scrub keeps elements on the allow-list and strips or prunes the rest.
func (s *PermitScrubber) Scrub(n *html.Node) Directive {
	s.init()
	if s.tags[strings.ToLower(n.Data)] {
		return DirectiveContinue
	}
	if s.Prune {
		return DirectivePrune
	}
	return DirectiveStrip
}

// ScrubAttributes filters n's attributes against the allow-list, the URI
// scheme check, and the style value check.
func (s *PermitScrubber) ScrubAttributes(n *html.Node) {
	s.init()
	validate := s.AttrValidators[strings.ToLower(n.Data)]
	filterAttributes(n, func(name string) bool { return s.attrs[name] },
		validate, s.schemes, defaultSafelist.CSSProperties)
}

// TargetScrubber removes the elements named in its deny-list and keeps
// everything else. When Tags is empty it inverts: any element absent
// from the fallback safelist is treated as targeted. Targeted elements
// are stripped, or pruned when Prune is set.
//
// Like PermitScrubber, a TargetScrubber is safe for concurrent reuse as
// long as its fields are left alone after first use.
type TargetScrubber struct {
	// Tags is the element deny-list, matched case-insensitively. Empty
	// means "everything not in the fallback safelist".
	Tags []string

	// Attributes is the attribute deny-list. Empty means attributes are
	// instead filtered against the fallback safelist's allow-list.
	Attributes []string

	// Prune removes targeted elements together with their subtree.
	Prune bool

	// Safelist supplies the fallback tables. nil means DefaultSafelist.
	Safelist *Safelist

	once  sync.Once
	tags  map[string]bool
	attrs map[string]bool
	safe  *Safelist
}

func (s *TargetScrubber) init() {
	s.once.Do(func() {
		s.tags = sliceToSet(s.Tags)
		s.attrs = sliceToSet(s.Attributes)
		s.safe = s.Safelist
		if s.safe == nil {
			s.safe = DefaultSafelist()
		}
	})
}

// Scrub strips or prunes targeted elements and keeps the rest.
func (s *TargetScrubber) Scrub(n *html.Node) Directive {
	s.init()
	tag := strings.ToLower(n.Data)
	var targeted bool
	if len(s.tags) > 0 {
		targeted = s.tags[tag]
	} else {
		targeted = !s.safe.Elements[tag]
	}
	if !targeted {
		return DirectiveContinue
	}
	if s.Prune {
		return DirectivePrune
	}
	return DirectiveStrip
}

// ScrubAttributes removes deny-listed attribute names, or filters against
// the fallback safelist when no explicit deny-list is set. Surviving URI
// and style attributes are value-checked either way.
func (s *TargetScrubber) ScrubAttributes(n *html.Node) {
	s.init()
	keep := func(name string) bool { return s.safe.Attributes[name] }
	if len(s.attrs) > 0 {
		keep = func(name string) bool { return !s.attrs[name] }
	}
	filterAttributes(n, keep, nil, s.safe.URISchemes, s.safe.CSSProperties)
}

// filterAttributes rebuilds n.Attr keeping only attributes that pass the
// name filter (or validator, when set), the URI scheme check for
// reference-bearing attributes, and the CSS check for style values. A
// style attribute whose declarations are all rejected is dropped whole.
func filterAttributes(n *html.Node, keep func(name string) bool, validate AttrValidator, schemes, cssProps map[string]bool) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		name := strings.ToLower(a.Key)
		if validate != nil {
			if !validate(n, a) {
				continue
			}
		} else if !keep(name) {
			continue
		}
		if uriAttributes[name] && !schemeAllowed(a.Val, schemes) {
			continue
		}
		if name == "style" {
			a.Val = SanitizeCSSWith(a.Val, cssProps)
			if a.Val == "" {
				continue
			}
		}
		out = append(out, a)
	}
	n.Attr = out
}

// schemeAllowed reports whether val is a relative reference or carries a
// scheme on the allow-list. Values that fail to parse are rejected: an
// unparseable reference is not worth keeping. Control characters are
// stripped first so they cannot hide a scheme from the parser.
func schemeAllowed(val string, schemes map[string]bool) bool {
	v := strings.TrimSpace(val)
	v = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, v)

	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		// Relative reference, fragment, or bare path.
		return true
	}
	return schemes[strings.ToLower(u.Scheme)]
}
