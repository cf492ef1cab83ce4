// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Descriptive statistics over the strict upper triangle (i<j) of a square
//     matrix: the entries that represent each unordered pair exactly once,
//     excluding self-distances on the diagonal.
//
// Exposed API:
//   - UpperTriangle(M)     -> []float64 // row-major i<j entries
//   - UpperTriangleMean(M) -> float64   // arithmetic mean of the above
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; Dense fast path reads the flat buffer.

package matrix

import "math"

const (
	opUpperTriangle     = "UpperTriangle"
	opUpperTriangleMean = "UpperTriangleMean"
)

// pairCount returns n(n-1)/2, the number of strict upper-triangle entries.
func pairCount(n int) int { return n * (n - 1) / 2 }

// upperTriangle extracts A[i,j] for 0 ≤ i < j < n in row-major order.
// Implementation:
//   - Stage 1: NotNil → Square.
//   - Stage 2: preallocate n(n-1)/2 and append in fixed order.
//
// Returns an empty (non-nil) slice for 1×1 input.
// Complexity: Time O(n²), Space O(n²).
func upperTriangle(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opUpperTriangle, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opUpperTriangle, err)
	}

	n := m.Rows()
	out := make([]float64, 0, pairCount(n))

	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out = append(out, d.data[i*n+i+1:(i+1)*n]...)
		}

		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opUpperTriangle, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// upperTriangleMean returns the arithmetic mean of the strict upper triangle.
// Implementation:
//   - Stage 1: NotNil → Square → n ≥ 2 (else ErrEmptyTriangle).
//   - Stage 2: single accumulation pass; no intermediate slice.
//   - Stage 3: if finite entries overflowed the sum, repeat the pass dividing
//     each term by the pair count first.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmptyTriangle, wrapped At errors.
//
// Complexity:
//   - Time O(n²), Space O(1).
func upperTriangleMean(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opUpperTriangleMean, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opUpperTriangleMean, err)
	}

	count := float64(pairCount(m.Rows()))
	if count == 0 {
		return 0, matrixErrorf(opUpperTriangleMean, ErrEmptyTriangle)
	}

	var sum float64
	var sawInf bool
	err := visitUpper(m, func(v float64) {
		sum += v
		sawInf = sawInf || math.IsInf(v, 0)
	})
	if err != nil {
		return 0, matrixErrorf(opUpperTriangleMean, err)
	}
	if !math.IsInf(sum, 0) || sawInf {
		return sum / count, nil
	}

	sum = 0
	if err = visitUpper(m, func(v float64) { sum += v / count }); err != nil {
		return 0, matrixErrorf(opUpperTriangleMean, err)
	}

	return sum, nil
}

// visitUpper calls fn for each A[i,j] with i<j in row-major order.
// Assumes m is non-nil and square.
func visitUpper(m Matrix, fn func(v float64)) error {
	n := m.Rows()

	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			for _, v := range d.data[i*n+i+1 : (i+1)*n] {
				fn(v)
			}
		}

		return nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			fn(v)
		}
	}

	return nil
}
