// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distcmp/compare"
)

// tolerances are the symmetry-check flags shared by run and check.
type tolerances struct {
	rtol, atol float64
}

func (t *tolerances) bind(c *cobra.Command) {
	c.Flags().Float64Var(&t.rtol, "rtol", compare.DefaultRelTol, "relative tolerance of the symmetry check")
	c.Flags().Float64Var(&t.atol, "atol", compare.DefaultAbsTol, "absolute tolerance of the symmetry check")
}

// options converts the flags into comparator options; the With* constructors
// panic on bad values, so flags are checked here first.
func (t tolerances) options() ([]compare.Option, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"rtol", t.rtol}, {"atol", t.atol}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return nil, fmt.Errorf("--%s must be a finite, non-negative number (got %v)", f.name, f.v)
		}
	}
	return []compare.Option{compare.WithRelTol(t.rtol), compare.WithAbsTol(t.atol)}, nil
}
