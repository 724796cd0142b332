// Package rut formats and validates Chilean RUT identifiers — the national
// tax number made of a numeric body plus a modulo-11 verifier digit.
//
// 🚀 What is rut?
//
//	A small, pure-Go engine that brings together:
//		• Sanitization: strip dots, dashes and noise down to the [0-9K] alphabet
//		• Checksum: the canonical modulo-11 weighted sum (weights 2..7, right-to-left)
//		• Formatting: standard "18.927.589-7", compact "18927589-7" and clean "189275897" layouts
//		• Extraction: pull the numeric body or the verifier out of any representation
//
// ✨ Why choose rut?
//
//   - Tolerant input – accepts any of the common textual layouts, or raw noise
//   - Deterministic – every operation is a pure function of its arguments
//   - Overflow-proof – the checksum walks the digits, so body length is unbounded
//   - Configurable – separator, layout and strictness via functional options
//
// ⚙️ Usage:
//
//	import "github.com/chiletools/rut"
//
//	formatted, err := rut.Format("18927589-7")        // "18.927.589-7"
//	ok := rut.Validate("18.927.589-7")                // true
//	digit, err := rut.ComputeCheckDigit("18927589")   // "7"
//
// Every operation resolves its options per call and shares no state, so
// concurrent use from any number of goroutines needs no coordination.
//
// See examples in example_test.go and the command-line front-end under
// cmd/rutcheck.
package rut
