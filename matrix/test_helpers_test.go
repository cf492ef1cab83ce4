// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for validators and statistics.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distcmp/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// triangle3 is the 3×3 fixture whose strict upper triangle is {1, 2, 3}.
func triangle3() [][]float64 {
	return [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
}
