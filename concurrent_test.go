package rut_test

import (
	"testing"

	"github.com/chiletools/rut"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentOperations exercises the full operation surface from many
// goroutines at once. Every operation resolves its options per call and
// shares no state, so the fan-out must produce identical results with no
// coordination.
func TestConcurrentOperations(t *testing.T) {
	const (
		goroutines = 8
		iterations = 200
	)

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				formatted, err := rut.Format("18927589-7", rut.WithSeparator(","))
				if err != nil {
					return err
				}
				if formatted != "18,927,589-7" {
					return rut.ErrBadShape
				}
				if !rut.Validate("20.901.792-K") {
					return rut.ErrChecksum
				}
				if rut.Validate("18.927.589-8") {
					return rut.ErrChecksum
				}
				if res := rut.Inspect("189275897"); !res.Valid {
					return res.Err
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait(), "concurrent invocations must be independent")
}
