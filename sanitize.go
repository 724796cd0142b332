// Package rut - sanitization and shape checking.
//
// These are the first two stages of the pipeline: raw text is reduced to the
// canonical [0-9K] alphabet, then tested for the minimal body+verifier shape.
// Both stages are pure and never fail; garbage input simply yields a string
// the downstream stages reject.
package rut

import (
	"regexp"
	"strings"
)

var (
	// foreignRx matches every character outside the canonical alphabet.
	// Normalize mode strips all of them.
	foreignRx = regexp.MustCompile(`[^0-9kK]`)

	// separatorRx matches the punctuation the preserve-structure mode is
	// allowed to remove: dots, whitespace and dashes.
	separatorRx = regexp.MustCompile(`[.\s-]`)

	// shapeRx is the minimal body+verifier shape: one or more digits followed
	// by exactly one digit-or-K. Anchored, so it doubles as the strict check.
	shapeRx = regexp.MustCompile(`^[0-9]+[0-9K]$`)

	// digitsRx matches a purely numeric body.
	digitsRx = regexp.MustCompile(`^[0-9]+$`)
)

// sanitize reduces raw input to the canonical uppercase [0-9K] alphabet.
//
// With normalize set, every character outside [0-9kK] is stripped. Otherwise
// only separator noise (dots, whitespace, dashes) is removed, so any other
// foreign character survives and fails the shape check downstream.
// The result may be empty; sanitize itself has no failure path.
func sanitize(raw string, normalize bool) string {
	s := strings.TrimSpace(raw)
	if normalize {
		s = foreignRx.ReplaceAllString(s, "")
	} else {
		s = separatorRx.ReplaceAllString(s, "")
	}

	return strings.ToUpper(s)
}

// hasShape reports whether a sanitized string is a plausible body+verifier
// pair: length at least two and matching shapeRx.
//
// The strict flag insists every character before the verifier is a digit,
// which the anchored pattern already guarantees; both modes therefore accept
// the same well-formed strings. The flag is kept so callers doing partial
// checks can state their intent.
func hasShape(s string, strict bool) bool {
	if len(s) < 2 {
		return false
	}

	// The anchored pattern already enforces the strict requirement, so both
	// modes accept the same well-formed strings.
	return shapeRx.MatchString(s)
}

// splitParts divides a shaped sanitized string into its numeric body and
// single-character verifier. Callers must have established the shape first.
func splitParts(s string) (body, checkDigit string) {
	return s[:len(s)-1], s[len(s)-1:]
}
