// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/distcmp/matrix"
)

// ExampleUpperTriangleMean computes the mean pairwise distance of a small
// three-item distance matrix.
func ExampleUpperTriangleMean() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})

	pairs, _ := matrix.UpperTriangle(m)
	mean, _ := matrix.UpperTriangleMean(m)
	fmt.Println(pairs)
	fmt.Printf("%.1f\n", mean)
	// Output:
	// [1 2 3]
	// 2.0
}
