// SPDX-License-Identifier: MIT

package dataset

// YAMLPlan is the on-disk shape of a comparison plan.
type YAMLPlan struct {
	Matrices    map[string][][]float64 `yaml:"matrices"`
	Comparisons []YAMLComparison       `yaml:"comparisons"`
}

// YAMLComparison references two entries of YAMLPlan.Matrices by name.
type YAMLComparison struct {
	Name string   `yaml:"name"`
	A    string   `yaml:"a"`
	B    string   `yaml:"b"`
	Norm *float64 `yaml:"norm"`
}
