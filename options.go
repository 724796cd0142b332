// Package rut - option resolution.
//
// Configuration is the one place where misuse is a programmer error rather
// than a data-quality outcome, so resolution returns ErrInvalidOption-wrapped
// errors instead of the quiet sentinels used everywhere else. Each operation
// resolves its options per call; nothing is persisted between calls.
package rut

import (
	"fmt"

	validation "github.com/jellydator/validation"
)

// validate checks the structural invariants of an Options value: the
// separator must be exactly one rune and the layout must be a member of the
// enumerated set. Unknown fields are inexpressible through the functional
// option surface, so nothing else needs checking.
func (o Options) validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Separator,
			validation.Required.Error("separator is required"),
			validation.RuneLength(1, 1).Error("separator must be exactly one character"),
		),
		validation.Field(&o.Layout,
			validation.Required.Error("layout is required"),
			validation.In(LayoutStandard, LayoutCompact, LayoutClean).
				Error(`layout must be one of "standard", "compact" or "clean"`),
		),
	)
}

// resolveOptions merges the caller-supplied Option funcs over DefaultOptions
// and validates the outcome. On failure it still returns the merged Options
// so the caller can reach the configured Logger for diagnostics.
//
// Complexity: O(len(opts)) merge plus constant-time validation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return o, fmt.Errorf("%w: %s", ErrInvalidOption, err)
	}

	return o, nil
}

// diag emits a best-effort diagnostic through the configured Logger.
// A nil Logger disables logging; the engine never writes anywhere else.
func (o Options) diag(msg string, err error) {
	if o.Logger == nil {
		return
	}
	o.Logger.Warn(msg, "error", err)
}
