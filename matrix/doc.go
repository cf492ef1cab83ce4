// Package matrix provides the dense numeric substrate for comparing pairwise
// distance matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, built from
//     decoded rows with NewDenseFromRows.
//   - Validators for nil, shape, squareness, and symmetry within
//     relative+absolute closeness (ValidateSymmetricClose).
//   - Strict upper-triangle statistics (UpperTriangle, UpperTriangleMean) and
//     the Frobenius distance between two matrices (FrobeniusDistance).
//
// All functions are pure and deterministic; errors are package sentinels
// matched with errors.Is.
package matrix
