// Package compare contextualizes a Frobenius-norm difference between two
// pairwise-distance matrices.
//
// Given two symmetric n×n distance matrices A and B and a norm computed
// elsewhere, Compare reports the mean pairwise distance of each matrix (over
// the strict upper triangle, so every unordered pair counts once and
// self-distances are excluded), their average, and the norm as a percentage
// of that average:
//
//	meanA = mean{A[i,j] : i<j}
//	meanB = mean{B[i,j] : i<j}
//	overall = (meanA + meanB) / 2
//	relative% = norm / overall * 100
//
// Validation is fail-fast. Every failure matches one of ErrShapeMismatch,
// ErrAsymmetricMatrix, ErrInsufficientSize or ErrDegenerateMean; failures tied
// to one input are wrapped in *InputError naming operand A or B.
//
// Compare is pure: it performs no I/O, holds no state between calls, and
// never derives the norm it is given.
package compare
