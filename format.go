package rut

import "strings"

// groupSize is the digit-triplet width of the standard layout.
const groupSize = 3

// groupBody splits a numeric body into right-aligned triplets joined by sep.
// The leftmost group carries 1–3 digits, so short bodies group correctly:
// "18927589" → "18.927.589", "589" → "589", "7589" → "7.589".
//
// Complexity: O(len(body)) time and space.
func groupBody(body, sep string) string {
	if len(body) <= groupSize {
		return body
	}

	// Number of groups after the (possibly short) leading one.
	head := len(body) % groupSize
	if head == 0 {
		head = groupSize
	}

	var b strings.Builder
	b.Grow(len(body) + (len(body)/groupSize)*len(sep))
	b.WriteString(body[:head])
	for i := head; i < len(body); i += groupSize {
		b.WriteString(sep)
		b.WriteString(body[i : i+groupSize])
	}

	return b.String()
}

// render produces the textual form of a body+verifier pair under the
// resolved options. Malformed pairs are rejected upstream; render itself
// has no failure path.
func render(body, checkDigit string, o Options) string {
	switch o.Layout {
	case LayoutCompact:
		return body + "-" + checkDigit
	case LayoutClean:
		return body + checkDigit
	default: // LayoutStandard
		return groupBody(body, o.Separator) + "-" + checkDigit
	}
}
