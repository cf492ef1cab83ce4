// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels over pairs of equally shaped matrices: tolerant
//     closeness (ewAllClose), squared-difference accumulation (ewFrobeniusDistance),
//     and the transpose copy that ValidateSymmetricClose compares against.
//
// Determinism & Performance:
//   - Fixed i→j traversal; *Dense operands use flat-slice fast paths.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opAllClose          = "AllClose"
	opTranspose         = "Transpose"
	opFrobeniusDistance = "FrobeniusDistance"
)

// ewPrepareBinary runs the shared NotNil(a) → NotNil(b) → SameShape sequence.
func ewPrepareBinary(op string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(op, err)
	}

	return nil
}

// ewAllClose checks element-wise isClose(a[i,j], b[i,j]) for identical shapes.
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances, normalize negatives to |tol|.
//   - Stage 2: validate operands.
//   - Stage 3: scan (Dense fast path or At fallback), early-exit on first violation.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ewPrepareBinary(opAllClose, a, b); err != nil {
		return false, err
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !isClose(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !isClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewFrobeniusDistance returns ‖a − b‖_F = sqrt(Σ_ij (a[i,j] − b[i,j])²).
// NaN/Inf inputs propagate into the result; no sanitizing is done here.
func ewFrobeniusDistance(a, b Matrix) (float64, error) {
	if err := ewPrepareBinary(opFrobeniusDistance, a, b); err != nil {
		return 0, err
	}

	var sum, d float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d = da.data[idx] - db.data[idx]
				sum += d * d
			}

			return math.Sqrt(sum), nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobeniusDistance, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobeniusDistance, err)
			}
			d = av - bv
			sum += d * d
		}
	}

	return math.Sqrt(sum), nil
}

// transpose returns a new c×r *Dense with out[j,i] = m[i,j].
func transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out.data[j*r+i] = d.data[i*c+j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*r+i] = v
		}
	}

	return out, nil
}
