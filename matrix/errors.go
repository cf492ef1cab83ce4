// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported function returns one of these sentinels (possibly wrapped
// with an operation tag via fmt.Errorf("%s: %w")); callers match with errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimension -> numeric (NaN/Inf tolerance) -> structural (asymmetry).

var (
	// ErrBadShape is returned when row data is ragged (rows of different length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. FrobeniusDistance on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the supplied tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (tolerances, for example).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyTriangle indicates that a matrix has no strict upper-triangle
	// entries (n <= 1), so their mean is undefined.
	ErrEmptyTriangle = errors.New("matrix: strict upper triangle is empty")
)
