package htmlscrub

import (
	"strings"

	cssparser "github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
)

// Vendor prefixes are trimmed from property names before matching the
// allow-list, so "-webkit-border-radius" matches "border-radius".
var cssVendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-", "-khtml-"}

// SanitizeCSS filters a CSS declaration list against the default
// property safelist. Declarations with disallowed properties or unsafe
// values are silently dropped; the survivors are re-joined in their
// original order. An empty string means nothing survived.
func SanitizeCSS(css string) string {
	return SanitizeCSSWith(css, DefaultSafelist().CSSProperties)
}

// SanitizeCSSWith is SanitizeCSS with a caller-supplied property
// allow-list (lowercase names). A declaration is kept only if its
// vendor-prefix-normalized property is on the list and its value
// contains no expression(...) construct and no url(...) with a
// disallowed scheme. Unparseable input yields the empty string.
func SanitizeCSSWith(css string, allowedProperties map[string]bool) string {
	trimmed := strings.TrimSpace(css)
	if trimmed == "" {
		return ""
	}
	// The parser wants terminated declarations.
	if !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}

	decls, err := cssparser.ParseDeclarations(trimmed)
	if err != nil {
		return ""
	}

	kept := make([]string, 0, len(decls))
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		for _, p := range cssVendorPrefixes {
			prop = strings.TrimPrefix(prop, p)
		}
		if !allowedProperties[prop] {
			continue
		}
		if !safeCSSValue(d.Value) {
			continue
		}
		kept = append(kept, d.Property+": "+d.Value)
	}
	return strings.Join(kept, "; ")
}

// safeCSSValue scans a declaration value and rejects constructs that can
// execute code or smuggle a reference: expression(...) and url(...)
// with a scheme outside the default allow-list.
func safeCSSValue(value string) bool {
	s := scanner.New(value)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return true
		case scanner.TokenError:
			return false
		case scanner.TokenURI:
			if !safeCSSURI(tok.Value) {
				return false
			}
		case scanner.TokenFunction:
			if strings.EqualFold(strings.TrimSuffix(tok.Value, "("), "expression") {
				return false
			}
		case scanner.TokenIdent:
			if strings.EqualFold(tok.Value, "expression") {
				return false
			}
		}
	}
}

// safeCSSURI extracts the reference inside a url(...) token and applies
// the same scheme check as reference-bearing attributes.
func safeCSSURI(tok string) bool {
	inner := strings.TrimSpace(tok)
	if i := strings.IndexByte(inner, '('); i >= 0 {
		inner = inner[i+1:]
	}
	inner = strings.TrimSuffix(strings.TrimSpace(inner), ")")
	inner = strings.Trim(strings.TrimSpace(inner), `"'`)
	return schemeAllowed(inner, defaultSafelist.URISchemes)
}
