// Package htmlscrub is a policy-driven scrubbing engine that removes or
// rewrites unsafe markup from a parsed HTML node tree, plus a companion
// filter for CSS declaration lists.
//
// # Overview
//
// htmlscrub parses an HTML fragment using golang.org/x/net/html, walks
// the resulting node tree in pre-order, and mutates it in place
// according to a [Scrubber]: a strategy object that decides, per
// element, whether the node is kept, kept untouched, stripped (tag
// removed, children kept in place), or pruned with its whole subtree.
// The scrubbed tree is then serialized back to a string, or reduced to
// plain text.
//
// # Scrubbers
//
// Two built-in scrubbers are provided:
//   - [PermitScrubber] — an explicit allow-list: elements outside the
//     list are stripped or pruned.
//   - [TargetScrubber] — an explicit deny-list: named elements are
//     stripped or pruned; with no explicit list it removes everything
//     absent from a fallback [Safelist].
//
// Callers can supply their own Scrubber to [Walk] or
// [Options.Scrubber]; the optional [NodeSkipper] and
// [AttributeScrubber] capabilities hook node protection and attribute
// filtering.
//
// # Entry points
//
//   - [Sanitize] — safelist sanitization with optional explicit tag and
//     attribute lists.
//   - [SanitizeLinks] — removes anchor tags, keeping their text.
//   - [SanitizeFullText] — reduces markup to plain text, optionally
//     preserving line structure around block elements.
//   - [SanitizeCSS] — filters a standalone CSS declaration list.
//
// # Security
//
// Attribute values are validated, not just attribute names: reference-
// bearing attributes (href, src, action, ...) must carry an allowed
// scheme or be relative, so javascript: and script-bearing data: URLs
// are dropped. Style attributes are filtered declaration by
// declaration, rejecting disallowed properties, expression(...)
// constructs, and url(...) references with disallowed schemes. Invalid
// values are never reported as errors; they are silently dropped.
//
// Scrubbing is idempotent: scrubbing an already-scrubbed string with
// the same configuration returns it unchanged.
//
// # Thread Safety
//
// All entry points are safe for concurrent use. Scrubber and Safelist
// values may be shared across concurrent calls as long as their fields
// are not mutated after first use.
//
// # Example
//
//	clean, err := htmlscrub.Sanitize(userInput, &htmlscrub.Options{
//		Tags: []string{"b", "i", "a"},
//	})
package htmlscrub
