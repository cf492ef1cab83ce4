// SPDX-License-Identifier: MIT
// Package: matrix
//
// Public facades. Each exported function delegates to a private kernel
// (ew*/upperTriangle*) so that validation, loops, and error tags
// live in one place per operation.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FrobeniusDistance returns the Frobenius norm of the difference a − b:
//
//	‖a − b‖_F = sqrt(Σ_ij (a[i,j] − b[i,j])²)
//
// Time: O(r*c). Space: O(1). Deterministic.
//
// AI-Hints:
//   - Useful when no externally computed norm is available for a pair of
//     distance matrices; the comparison layer itself never derives it.
func FrobeniusDistance(a, b Matrix) (float64, error) {
	return ewFrobeniusDistance(a, b)
}

// UpperTriangle returns the strict upper-triangle entries (i<j) of a square
// matrix in row-major order. A 1×1 matrix yields an empty slice.
// Time: O(n²). Space: O(n²).
func UpperTriangle(m Matrix) ([]float64, error) { return upperTriangle(m) }

// UpperTriangleMean returns the mean of the strict upper-triangle entries
// (the mean pairwise distance for a distance matrix).
// Returns ErrEmptyTriangle when n ≤ 1.
// Time: O(n²). Space: O(1).
func UpperTriangleMean(m Matrix) (float64, error) { return upperTriangleMean(m) }
