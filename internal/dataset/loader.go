// SPDX-License-Identifier: MIT

package dataset

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and maps the plan at path.
func Load(path string) (Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, &OpError{
			Op:   "dataset.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

// Parse decodes a plan from data; path is only used in error messages.
func Parse(path string, data []byte) (Plan, error) {
	var dto YAMLPlan
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Plan{}, &OpError{
			Op:   "dataset.parse",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapPlan(path, dto)
}
