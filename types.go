// Package rut - core types and configuration options for the RUT engine.
//
// This file defines:
//  1. Sentinel errors shared by every operation.
//  2. The Layout enumeration of supported textual renderings.
//  3. Options, its functional Option setters and DefaultOptions().
//  4. Result, the snapshot record returned by Inspect.
package rut

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by the RUT engine.
var (
	// ErrInvalidOption indicates malformed configuration: a separator that is
	// not exactly one rune, or a layout outside {standard, compact, clean}.
	// This is the only programmer-error path; every other rejection is a
	// data-quality outcome.
	ErrInvalidOption = errors.New("rut: invalid option")

	// ErrBadShape indicates the input, after sanitization, is empty, shorter
	// than two characters, or not shaped as digits followed by one verifier.
	ErrBadShape = errors.New("rut: input does not have body+verifier shape")

	// ErrBadBody indicates a body that is empty or contains non-digit
	// characters, so no check digit can be computed for it.
	ErrBadBody = errors.New("rut: body must be one or more digits")

	// ErrChecksum indicates a well-shaped identifier whose verifier disagrees
	// with the modulo-11 computation. This is an expected outcome for the
	// validation operations, not a fault.
	ErrChecksum = errors.New("rut: check digit does not match body")
)

// Layout selects the textual rendering of a body+verifier pair.
//
// LayoutStandard – body grouped into right-aligned digit triplets joined by
// the configured separator, then "-verifier": "18.927.589-7".
// LayoutCompact  – body and verifier joined by a dash only: "18927589-7".
// LayoutClean    – bare concatenation with no punctuation: "189275897".
type Layout string

const (
	// LayoutStandard renders "18.927.589-7" (separator configurable).
	LayoutStandard Layout = "standard"

	// LayoutCompact renders "18927589-7".
	LayoutCompact Layout = "compact"

	// LayoutClean renders "189275897".
	LayoutClean Layout = "clean"
)

// Options configures the behavior of every RUT operation.
//
// Separator – character placed between digit triplets in LayoutStandard.
// Must be exactly one rune; default ".".
//
// Strict – if true, the shape check insists every character before the
// verifier is a digit. Relaxed mode applies the same anchored pattern and
// exists to keep partial-input checks cheap.
//
// Normalize – if true (default), sanitization strips every character outside
// [0-9kK]; if false, only separator noise (dots, whitespace, dashes) is
// removed and the rest must already be well-formed.
//
// Layout – output rendering, one of the Layout constants.
//
// Logger – destination for diagnostics emitted when the orchestration layer
// converts an internal fault into a sentinel. Nil disables logging entirely.
type Options struct {
	Separator string       // Triplet separator for the standard layout
	Strict    bool         // Whether shape checking is strict
	Normalize bool         // Whether sanitization strips all foreign characters
	Layout    Layout       // Output rendering
	Logger    *slog.Logger // Optional diagnostics sink; nil means silent
}

// Option represents a functional option for configuring an operation.
type Option func(*Options)

// WithSeparator sets the triplet separator used by LayoutStandard.
// The value is validated when options are resolved; anything other than a
// single rune yields ErrInvalidOption from the calling operation.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithStrict enables strict shape checking.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithPreserveStructure disables full normalization: sanitization removes
// only dots, whitespace and dashes, so any other foreign character survives
// and the shape check rejects the input.
func WithPreserveStructure() Option {
	return func(o *Options) {
		o.Normalize = false
	}
}

// WithLayout selects the output rendering.
// The value is validated when options are resolved; unknown layouts yield
// ErrInvalidOption from the calling operation.
func WithLayout(l Layout) Option {
	return func(o *Options) {
		o.Layout = l
	}
}

// WithLogger installs a diagnostics sink. Only the orchestration layer logs,
// and only when it converts configuration misuse into a sentinel error.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with the engine
// defaults. Use this as the base for functional-option overrides.
//
// Defaults:
//   - Separator: "." (the conventional Chilean thousands separator).
//   - Strict:    false.
//   - Normalize: true (strip everything outside [0-9kK]).
//   - Layout:    LayoutStandard.
//   - Logger:    nil (diagnostics disabled).
func DefaultOptions() Options {
	return Options{
		Separator: ".",
		Strict:    false,
		Normalize: true,
		Layout:    LayoutStandard,
		Logger:    nil,
	}
}

// Result holds the outcome of the combined Inspect operation.
//
// Formatted is empty and Err non-nil when the input could not be rendered.
// Valid reports whether the verifier matches the modulo-11 computation.
// Callers branch on the error kind via errors.Is against the package
// sentinels, never on concrete types.
type Result struct {
	// Formatted is the rendering under the resolved layout, or "" on failure.
	Formatted string

	// Valid reports whether the check digit agrees with the body.
	Valid bool

	// Err carries the rejection kind: ErrInvalidOption, ErrBadShape,
	// ErrBadBody or ErrChecksum. Nil when the identifier is valid.
	Err error

	// Body is the extracted numeric body, or "" when unavailable.
	Body string

	// CheckDigit is the extracted verifier character, or "" when unavailable.
	CheckDigit string
}
