// Package rut - orchestration layer.
//
// This file composes the pipeline stages (sanitize → shape → checksum/format)
// into the public operations. Data flows one direction; every operation is a
// pure function of its arguments and resolves its options per call, so
// concurrent invocations are trivially independent.
//
// Error policy: operations returning (value, error) report rejections through
// the package sentinels; boolean operations never error — configuration
// misuse is converted to false with a diagnostic through Options.Logger.
package rut

// Format renders a raw identifier under the resolved layout.
//
// The input may arrive in any textual form; it is sanitized and shape-checked
// before rendering. Format does not verify the checksum — a well-shaped
// identifier with a wrong verifier still formats (use Validate or Inspect
// to check it).
//
// Errors:
//   - ErrInvalidOption — malformed separator or layout.
//   - ErrBadShape      — empty, too-short or unshaped input.
//
// Complexity: O(len(raw)) time and space.
func Format(raw string, opts ...Option) (string, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return "", err
	}

	s := sanitize(raw, o.Normalize)
	if !hasShape(s, o.Strict) {
		return "", ErrBadShape
	}
	body, checkDigit := splitParts(s)

	return render(body, checkDigit, o), nil
}

// Validate reports whether a raw identifier carries the correct modulo-11
// verifier for its body. It returns false for empty, unshaped or
// misconfigured input; it never returns an error.
//
// Complexity: O(len(raw)) time, O(1) extra space.
func Validate(raw string, opts ...Option) bool {
	o, err := resolveOptions(opts)
	if err != nil {
		o.diag("rut: validate rejected configuration", err)

		return false
	}

	s := sanitize(raw, o.Normalize)
	if !hasShape(s, o.Strict) {
		return false
	}
	body, checkDigit := splitParts(s)

	want, err := ComputeCheckDigit(body)
	if err != nil {
		return false
	}

	return want == checkDigit
}

// Inspect combines formatting, validation and extraction into one Result
// snapshot. It never returns an error directly: rejections land in
// Result.Err as one of the package sentinels, and configuration misuse is
// additionally reported through Options.Logger.
//
// On a well-shaped input the Formatted, Body and CheckDigit fields are
// populated even when the checksum disagrees; Valid and Err then report the
// mismatch.
//
// Complexity: O(len(raw)) time and space.
func Inspect(raw string, opts ...Option) Result {
	o, err := resolveOptions(opts)
	if err != nil {
		o.diag("rut: inspect rejected configuration", err)

		return Result{Err: err}
	}

	s := sanitize(raw, o.Normalize)
	if !hasShape(s, o.Strict) {
		return Result{Err: ErrBadShape}
	}
	body, checkDigit := splitParts(s)

	res := Result{
		Formatted:  render(body, checkDigit, o),
		Body:       body,
		CheckDigit: checkDigit,
	}

	want, err := ComputeCheckDigit(body)
	if err != nil {
		res.Err = err

		return res
	}
	if want != checkDigit {
		res.Err = ErrChecksum

		return res
	}
	res.Valid = true

	return res
}

// Body extracts the numeric body of a raw identifier, without its verifier.
//
// Errors:
//   - ErrInvalidOption — malformed separator or layout.
//   - ErrBadShape      — empty, too-short or unshaped input.
//   - ErrBadBody       — body not purely numeric.
//
// Complexity: O(len(raw)) time and space.
func Body(raw string, opts ...Option) (string, error) {
	body, _, err := extract(raw, opts)

	return body, err
}

// CheckDigit extracts the verifier character of a raw identifier.
//
// Errors: as for Body.
//
// Complexity: O(len(raw)) time and space.
func CheckDigit(raw string, opts ...Option) (string, error) {
	_, checkDigit, err := extract(raw, opts)

	return checkDigit, err
}

// extract runs the shared sanitize/shape/split pipeline for the extraction
// operations.
func extract(raw string, opts []Option) (body, checkDigit string, err error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return "", "", err
	}

	s := sanitize(raw, o.Normalize)
	if !hasShape(s, o.Strict) {
		return "", "", ErrBadShape
	}
	body, checkDigit = splitParts(s)
	if !digitsRx.MatchString(body) {
		return "", "", ErrBadBody
	}

	return body, checkDigit, nil
}

// Normalize reduces a raw identifier to its fully stripped uppercase form
// over [0-9K]: "18.927.589-7" → "189275897".
//
// Errors:
//   - ErrBadShape — empty input or a stripped string without the
//     body+verifier shape.
//
// Complexity: O(len(raw)) time and space.
func Normalize(raw string) (string, error) {
	s := sanitize(raw, true)
	if !hasShape(s, false) {
		return "", ErrBadShape
	}

	return s, nil
}

// IsLayout reports whether a raw identifier is already rendered exactly in
// the given layout: re-formatting under that layout must reproduce the input
// byte for byte. It returns false for unshaped input or misconfiguration;
// it never returns an error.
//
// Complexity: O(len(raw)) time and space.
func IsLayout(raw string, layout Layout, opts ...Option) bool {
	o, err := resolveOptions(append(opts, WithLayout(layout)))
	if err != nil {
		o.diag("rut: layout check rejected configuration", err)

		return false
	}

	s := sanitize(raw, o.Normalize)
	if !hasShape(s, o.Strict) {
		return false
	}
	body, checkDigit := splitParts(s)

	return render(body, checkDigit, o) == raw
}
