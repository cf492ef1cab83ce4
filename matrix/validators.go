// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the validation checks that
//     guard distance-matrix statistics (nil, shape, square, symmetry).
//   - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - The symmetry check runs O(n²) against a transposed copy.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Square → tolerance → compare).

package matrix

import (
	"fmt"
	"math"
)

// Default tolerances for ValidateSymmetricClose callers.
// They match the conventional floating-point closeness defaults.
const (
	DefaultRelTol = 1e-5
	DefaultAbsTol = 1e-8
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface counts as nil.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetricClose checks that m equals its own transpose under relative
// and absolute closeness: |m[i,j] - m[j,i]| ≤ atol + rtol*|m[j,i]| for every (i,j).
// Implementation:
//   - Stage 1: NotNil → Square → finite tolerances.
//   - Stage 2: materialize mᵀ and compare it element-wise against m with ewAllClose,
//     which covers both (i,j) and (j,i) orientations of the relative bound.
//
// Behavior highlights:
//   - Equal infinities are close; NaN is never close (even on the diagonal).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (tolerance), ErrAsymmetry.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the transpose.
//
// AI-Hints:
//   - Use DefaultRelTol/DefaultAbsTol unless the upstream producer documents its precision.
func ValidateSymmetricClose(m Matrix, rtol, atol float64) error {
	const tag = "ValidateSymmetricClose"
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) {
		return validatorErrorf(tag, ErrNaNInf)
	}

	t, err := transpose(m)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	ok, err := ewAllClose(m, t, rtol, atol)
	if err != nil {
		return validatorErrorf(tag, err)
	}
	if !ok {
		return validatorErrorf(tag, ErrAsymmetry)
	}

	return nil
}

// isClose reports |a-b| ≤ atol + rtol*|b| with IEEE special cases:
// identical values (including same-signed infinities) are close, NaN never is,
// and an infinity is never close to a finite value.
func isClose(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
