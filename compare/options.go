// SPDX-License-Identifier: MIT

// Package compare: functional configuration for the symmetry tolerance.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX constructors panic only on nonsensical values
//     (programmer error); Compare itself never panics.

package compare

import (
	"math"

	"github.com/katalvlaran/distcmp/matrix"
)

// Default tolerances of the symmetry check (relative, absolute).
const (
	DefaultRelTol = matrix.DefaultRelTol
	DefaultAbsTol = matrix.DefaultAbsTol
)

const (
	panicRelTolInvalid = "compare: WithRelTol: tolerance must be finite, non-negative"
	panicAbsTolInvalid = "compare: WithAbsTol: tolerance must be finite, non-negative"
)

// Option mutates the comparator configuration.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rtol float64 // relative tolerance of the symmetry check, >= 0
	atol float64 // absolute tolerance of the symmetry check, >= 0
}

// WithRelTol sets the relative tolerance of the symmetry check.
// Panics when rtol is NaN, ±Inf or negative.
func WithRelTol(rtol float64) Option {
	if !validTol(rtol) {
		panic(panicRelTolInvalid)
	}

	return func(o *options) { o.rtol = rtol }
}

// WithAbsTol sets the absolute tolerance of the symmetry check.
// Panics when atol is NaN, ±Inf or negative.
func WithAbsTol(atol float64) Option {
	if !validTol(atol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *options) { o.atol = atol }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{rtol: DefaultRelTol, atol: DefaultAbsTol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validTol(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
