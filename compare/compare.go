// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"

	"github.com/katalvlaran/distcmp/matrix"
)

// percentScale converts a ratio into a percentage.
const percentScale = 100.0

// Result holds the descriptive statistics of one comparison.
type Result struct {
	MeanA           float64 // mean of A's strict upper triangle
	MeanB           float64 // mean of B's strict upper triangle
	OverallMean     float64 // (MeanA + MeanB) / 2
	RelativePercent float64 // externalNorm / OverallMean * 100
}

// Comparator compares pairs of distance matrices under a fixed tolerance
// configuration. The zero value is not usable; construct with New.
// A Comparator is immutable and safe for concurrent use.
type Comparator struct {
	opts options
}

// New returns a Comparator configured with opts applied over the defaults
// (DefaultRelTol, DefaultAbsTol).
func New(opts ...Option) *Comparator {
	return &Comparator{opts: gatherOptions(opts...)}
}

// Compare is shorthand for New(opts...).Compare(a, b, externalNorm).
func Compare(a, b matrix.Matrix, externalNorm float64, opts ...Option) (Result, error) {
	return New(opts...).Compare(a, b, externalNorm)
}

// Compare validates a and b as distance matrices and reports their mean
// pairwise distances together with externalNorm expressed as a percentage of
// the overall mean.
// Implementation:
//   - Stage 1: NotNil(A) → NotNil(B) → same shape → square.
//   - Stage 2: symmetry of A, then of B (relative+absolute closeness).
//   - Stage 3: n ≥ 2, so the strict upper triangle is non-empty.
//   - Stage 4: means, overall mean, degenerate-mean guard, percentage.
//
// Inputs:
//   - a, b: square matrices of identical shape.
//   - externalNorm: a divergence computed elsewhere; used only as the numerator
//     of the final ratio and never validated or re-derived.
//
// Errors:
//   - ErrShapeMismatch (shape differs, or an operand is not square).
//   - ErrAsymmetricMatrix wrapped in *InputError naming the operand.
//   - ErrInsufficientSize when n ≤ 1.
//   - ErrDegenerateMean when the overall mean is 0 or NaN.
//   - A nil operand yields *InputError wrapping matrix.ErrNilMatrix.
//
// Determinism:
//   - Fixed i→j loops; identical inputs yield bit-identical results.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (c *Comparator) Compare(a, b matrix.Matrix, externalNorm float64) (Result, error) {
	// Stage 1: presence and shape.
	if err := matrix.ValidateNotNil(a); err != nil {
		return Result{}, &InputError{Operand: OperandA, Err: err}
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return Result{}, &InputError{Operand: OperandB, Err: err}
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return Result{}, fmt.Errorf("%w: A is %dx%d, B is %dx%d",
			ErrShapeMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	// Same shape, so squareness of A decides for both; B is checked anyway
	// to keep the reported operand exact.
	if err := matrix.ValidateSquare(a); err != nil {
		return Result{}, inputErrorf(OperandA, ErrShapeMismatch, err)
	}
	if err := matrix.ValidateSquare(b); err != nil {
		return Result{}, inputErrorf(OperandB, ErrShapeMismatch, err)
	}

	// Stage 2: symmetry, A before B.
	if err := matrix.ValidateSymmetricClose(a, c.opts.rtol, c.opts.atol); err != nil {
		return Result{}, inputErrorf(OperandA, ErrAsymmetricMatrix, err)
	}
	if err := matrix.ValidateSymmetricClose(b, c.opts.rtol, c.opts.atol); err != nil {
		return Result{}, inputErrorf(OperandB, ErrAsymmetricMatrix, err)
	}

	// Stage 3: at least one off-diagonal pair.
	if n := a.Rows(); n <= 1 {
		return Result{}, fmt.Errorf("%w: n=%d", ErrInsufficientSize, n)
	}

	// Stage 4: statistics.
	meanA, err := matrix.UpperTriangleMean(a)
	if err != nil {
		return Result{}, &InputError{Operand: OperandA, Err: err}
	}
	meanB, err := matrix.UpperTriangleMean(b)
	if err != nil {
		return Result{}, &InputError{Operand: OperandB, Err: err}
	}

	// Halve before adding so two large finite means cannot overflow.
	overall := meanA/2 + meanB/2
	if overall == 0 || math.IsNaN(overall) {
		return Result{}, fmt.Errorf("%w: meanA=%g meanB=%g", ErrDegenerateMean, meanA, meanB)
	}

	return Result{
		MeanA:           meanA,
		MeanB:           meanB,
		OverallMean:     overall,
		RelativePercent: externalNorm / overall * percentScale,
	}, nil
}
