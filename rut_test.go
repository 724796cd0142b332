package rut_test

import (
	"testing"

	"github.com/chiletools/rut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_Scenarios covers the canonical accept/reject table: matching
// verifiers in any rendering, a checksum mismatch, and unusable input.
func TestValidate_Scenarios(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"18.927.589-7", true},
		{"18927589-7", true},
		{"189275897", true},
		{"20.901.792-K", true},
		{"20901792-k", true}, // lowercase verifier
		{"12.345.678-5", true},
		{"18.927.589-8", false}, // checksum mismatch
		{"12345678-4", false},   // checksum mismatch
		{"", false},
		{"   ", false},
		{"7", false},
		{"abc", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, rut.Validate(tc.raw), "Validate(%q)", tc.raw)
	}
}

// TestInspect_ValidIdentifier verifies the combined operation populates every
// field of the Result record on success.
func TestInspect_ValidIdentifier(t *testing.T) {
	res := rut.Inspect("18927589-7")

	require.NoError(t, res.Err, "valid identifier must not carry an error")
	assert.True(t, res.Valid)
	assert.Equal(t, "18.927.589-7", res.Formatted)
	assert.Equal(t, "18927589", res.Body)
	assert.Equal(t, "7", res.CheckDigit)
}

// TestInspect_ChecksumMismatch verifies a shaped identifier with a wrong
// verifier still formats and extracts, while Valid and Err report the
// mismatch as ErrChecksum.
func TestInspect_ChecksumMismatch(t *testing.T) {
	res := rut.Inspect("18.927.589-8")

	assert.ErrorIs(t, res.Err, rut.ErrChecksum, "mismatch is reported as a kind, not a fault")
	assert.False(t, res.Valid)
	assert.Equal(t, "18.927.589-8", res.Formatted, "mismatched identifiers still render")
	assert.Equal(t, "18927589", res.Body)
	assert.Equal(t, "8", res.CheckDigit)
}

// TestInspect_BadShape verifies unusable input yields an empty record with
// ErrBadShape.
func TestInspect_BadShape(t *testing.T) {
	for _, raw := range []string{"", "7", "xyz"} {
		res := rut.Inspect(raw)

		assert.ErrorIs(t, res.Err, rut.ErrBadShape, "Inspect(%q)", raw)
		assert.False(t, res.Valid, "Inspect(%q)", raw)
		assert.Empty(t, res.Formatted, "Inspect(%q)", raw)
		assert.Empty(t, res.Body, "Inspect(%q)", raw)
		assert.Empty(t, res.CheckDigit, "Inspect(%q)", raw)
	}
}

// TestExtraction verifies Body and CheckDigit across renderings and the
// shared rejection paths.
func TestExtraction(t *testing.T) {
	for _, raw := range []string{"18.927.589-7", "18927589-7", "189275897"} {
		body, err := rut.Body(raw)
		require.NoError(t, err, "Body(%q)", raw)
		assert.Equal(t, "18927589", body)

		digit, err := rut.CheckDigit(raw)
		require.NoError(t, err, "CheckDigit(%q)", raw)
		assert.Equal(t, "7", digit)
	}

	digit, err := rut.CheckDigit("20901792-k")
	require.NoError(t, err)
	assert.Equal(t, "K", digit, "extracted verifier is uppercased")

	for _, raw := range []string{"", "7", "abc"} {
		_, err = rut.Body(raw)
		assert.ErrorIs(t, err, rut.ErrBadShape, "Body(%q)", raw)

		_, err = rut.CheckDigit(raw)
		assert.ErrorIs(t, err, rut.ErrBadShape, "CheckDigit(%q)", raw)
	}
}

// TestNormalize verifies full stripping to the [0-9K] alphabet and the
// rejection of inputs that cannot yield a shaped identifier.
func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"18.927.589-7", "189275897"},
		{"18927589-7", "189275897"},
		{" 20.901.792-k ", "20901792K"},
		{"rut: 12.345.678-5", "123456785"},
	}

	for _, tc := range cases {
		got, err := rut.Normalize(tc.raw)
		require.NoError(t, err, "Normalize(%q)", tc.raw)
		assert.Equal(t, tc.want, got)
	}

	for _, raw := range []string{"", "7", "K", "..-"} {
		_, err := rut.Normalize(raw)
		assert.ErrorIs(t, err, rut.ErrBadShape, "Normalize(%q)", raw)
	}
}

// TestRoundTrip verifies extractBody+extractCheckDigit over a formatted
// identifier reproduces the normalized input.
func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"18927589-7", "20.901.792-K", "1-9", "28-0"} {
		formatted, err := rut.Format(raw)
		require.NoError(t, err, "Format(%q)", raw)

		body, err := rut.Body(formatted)
		require.NoError(t, err)
		digit, err := rut.CheckDigit(formatted)
		require.NoError(t, err)

		normalized, err := rut.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, normalized, body+digit, "round trip for %q", raw)
	}
}

// TestIsLayout verifies exact-rendering detection for each layout, including
// separator sensitivity and near-miss inputs.
func TestIsLayout(t *testing.T) {
	cases := []struct {
		raw    string
		layout rut.Layout
		opts   []rut.Option
		want   bool
	}{
		{"18.927.589-7", rut.LayoutStandard, nil, true},
		{"18927589-7", rut.LayoutCompact, nil, true},
		{"189275897", rut.LayoutClean, nil, true},
		{"18927589-7", rut.LayoutStandard, nil, false},  // missing separators
		{"18.927.589-7", rut.LayoutCompact, nil, false}, // separators present
		{"18.927.589-7", rut.LayoutClean, nil, false},
		{"20901792-k", rut.LayoutCompact, nil, false}, // lowercase verifier re-renders as K
		{"18,927,589-7", rut.LayoutStandard, []rut.Option{rut.WithSeparator(",")}, true},
		{"18,927,589-7", rut.LayoutStandard, nil, false}, // wrong separator
		{"", rut.LayoutStandard, nil, false},
		{"abc", rut.LayoutClean, nil, false},
	}

	for _, tc := range cases {
		got := rut.IsLayout(tc.raw, tc.layout, tc.opts...)
		assert.Equal(t, tc.want, got, "IsLayout(%q, %q)", tc.raw, tc.layout)
	}
}
