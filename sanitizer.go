package htmlscrub

import (
	"io"
	"strings"
)

// Options configures Sanitize.
type Options struct {
	// Tags is an explicit element allow-list. Together with Attributes
	// it selects a PermitScrubber; when both are omitted the default
	// safelist is used instead (via a TargetScrubber).
	Tags []string

	// Attributes is an explicit attribute allow-list.
	Attributes []string

	// Scrubber, when set, replaces the built-in scrubbers entirely;
	// Tags, Attributes, and Prune are then ignored.
	Scrubber Scrubber

	// Prune removes disallowed elements together with their subtree
	// instead of stripping the tag only.
	Prune bool
}

func (o *Options) scrubber() Scrubber {
	if o.Scrubber != nil {
		return o.Scrubber
	}
	if o.Tags != nil || o.Attributes != nil {
		return &PermitScrubber{Tags: o.Tags, Attributes: o.Attributes, Prune: o.Prune}
	}
	return &TargetScrubber{Prune: o.Prune}
}

// Sanitize parses markup, scrubs the tree according to o, and returns
// the serialized result. A nil o selects the default safelist. The only
// possible error comes from the parser; scrubbing itself cannot fail.
func Sanitize(markup string, o *Options) (string, error) {
	return SanitizeReader(strings.NewReader(markup), o)
}

// SanitizeReader reads markup from r, applies o, and returns the
// sanitized HTML string.
func SanitizeReader(r io.Reader, o *Options) (string, error) {
	if o == nil {
		o = &Options{}
	}
	root, err := parseFragment(r)
	if err != nil {
		return "", err
	}
	Walk(root, o.scrubber())
	return Render(root)
}

// SanitizeLinks removes anchor elements while keeping their content in
// place; everything else passes through untouched apart from attribute
// safelisting on kept elements.
func SanitizeLinks(markup string) (string, error) {
	root, err := ParseFragment(markup)
	if err != nil {
		return "", err
	}
	Walk(root, &TargetScrubber{Tags: []string{"a"}})
	return Render(root)
}

// SanitizeFullText reduces markup to plain text, eliding every tag. A
// nil o selects collapsed mode. Entity references are decoded by the
// parser, so the result is unescaped text.
func SanitizeFullText(markup string, o *TextOptions) (string, error) {
	if o == nil {
		o = &TextOptions{}
	}
	root, err := ParseFragment(markup)
	if err != nil {
		return "", err
	}
	return extractText(root, o.PreserveWhitespace), nil
}
