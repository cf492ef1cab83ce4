// SPDX-License-Identifier: MIT

// Command distcmp compares pairs of pairwise-distance matrices listed in a
// YAML plan and reports each externally computed Frobenius norm as a
// percentage of the pair's mean distance.
//
//	distcmp run -f examples/alignment_comparison.yaml
//	distcmp check -f examples/alignment_comparison.yaml
package main

import "github.com/katalvlaran/distcmp/internal/cli"

func main() {
	cli.Execute()
}
