// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface consumed by the comparison layer.
// Errors live in errors.go; the concrete row-major storage lives in impl_dense.go.
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Distance matrices are square, but the interface itself carries no shape
// contract so that validators can report violations instead of panicking.
//
// The interface is read-only: comparison and statistics never mutate their
// inputs. Mutation and copying live on *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
