// Package distcmp puts a Frobenius-norm difference between two pairwise
// distance matrices in context: it reports the mean pairwise distance of each
// matrix and the norm as a percentage of their average.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/          — Dense storage, validators, upper-triangle statistics
//	compare/         — the comparator: validation order, typed failures, result
//	internal/dataset — YAML plans of named matrices and comparisons
//	internal/report  — plain / pretty / json rendering
//	internal/cli     — the distcmp command (cmd/distcmp)
//
// Quick example, for the 3×3 matrix
//
//	0 1 2
//	1 0 3
//	2 3 0
//
// the strict upper triangle is {1, 2, 3} and the mean pairwise distance is 2.
//
//	go install github.com/katalvlaran/distcmp/cmd/distcmp@latest
package distcmp
