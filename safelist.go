package htmlscrub

import "strings"

// Safelist holds the static tables consulted when a scrubber has no
// explicit configuration of its own: the element and attribute names
// considered safe, the URI schemes accepted in reference-bearing
// attributes, and the CSS properties accepted in style values.
//
// A Safelist is plain data. Construct one at startup, share it by
// reference, and treat it as read-only while any scrub using it is in
// progress.
type Safelist struct {
	Elements      map[string]bool
	Attributes    map[string]bool
	URISchemes    map[string]bool
	CSSProperties map[string]bool
}

// DefaultSafelist returns the safelist used when no explicit tags or
// attributes are supplied. The returned value is shared; do not mutate it.
func DefaultSafelist() *Safelist { return defaultSafelist }

var defaultSafelist = &Safelist{
	Elements: sliceToSet([]string{
		"a", "abbr", "acronym", "address", "b", "big", "blockquote", "br",
		"cite", "code", "dd", "del", "dfn", "div", "dl", "dt", "em",
		"h1", "h2", "h3", "h4", "h5", "h6", "hr", "i", "img", "ins", "kbd",
		"li", "ol", "p", "pre", "q", "samp", "small", "span", "strong",
		"sub", "sup", "tt", "ul", "var",
	}),
	Attributes: sliceToSet([]string{
		"abbr", "alt", "cite", "datetime", "height", "href", "lang",
		"name", "src", "title", "width",
	}),
	URISchemes: sliceToSet([]string{"http", "https", "mailto"}),
	CSSProperties: sliceToSet([]string{
		"background", "background-color", "border", "border-bottom",
		"border-color", "border-left", "border-radius", "border-right",
		"border-style", "border-top", "border-width", "clear", "color",
		"cursor", "direction", "display", "float", "font", "font-family",
		"font-size", "font-style", "font-variant", "font-weight", "height",
		"letter-spacing", "line-height", "list-style", "list-style-type",
		"margin", "margin-bottom", "margin-left", "margin-right",
		"margin-top", "max-height", "max-width", "min-height", "min-width",
		"overflow", "padding", "padding-bottom", "padding-left",
		"padding-right", "padding-top", "text-align", "text-decoration",
		"text-indent", "text-transform", "vertical-align", "white-space",
		"width",
	}),
}

// uriAttributes are the attribute names that carry a URI reference;
// their values are scheme-checked regardless of policy.
var uriAttributes = sliceToSet([]string{
	"action", "background", "cite", "data", "formaction", "href",
	"longdesc", "lowsrc", "ping", "poster", "src", "usemap",
})

// blockElements are elements whose content forms its own line in the
// whitespace-preserving text extraction mode.
var blockElements = sliceToSet([]string{
	"address", "article", "aside", "blockquote", "canvas", "dd", "div",
	"dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "li", "main",
	"nav", "noscript", "ol", "output", "p", "pre", "section", "table",
	"tfoot", "tr", "ul", "video",
})

// lineBreakElements emit exactly one line break and nothing else in the
// whitespace-preserving text extraction mode.
var lineBreakElements = sliceToSet([]string{"br"})

func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[strings.ToLower(v)] = true
	}
	return m
}
