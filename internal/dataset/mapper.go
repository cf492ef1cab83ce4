// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/distcmp/matrix"
)

const opMap = "dataset.map"

// MapPlan validates a decoded YAMLPlan and resolves matrix references.
// Matrices that no comparison references are ignored and never built.
func MapPlan(path string, yp YAMLPlan) (Plan, error) {
	if len(yp.Comparisons) == 0 {
		return Plan{}, invalidField(path, "comparisons", "at least one comparison is required")
	}

	built := make(map[string]*matrix.Dense, len(yp.Matrices))
	resolve := func(field, name string) (*matrix.Dense, error) {
		if strings.TrimSpace(name) == "" {
			return nil, invalidField(path, field, "matrix name is required")
		}
		if m, ok := built[name]; ok {
			return m, nil
		}
		rows, ok := yp.Matrices[name]
		if !ok {
			return nil, &OpError{
				Op:   opMap,
				Kind: KindUnknownMatrix,
				Path: path,
				Err:  fmt.Errorf("field %s: no matrix named %q", field, name),
			}
		}
		m, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return nil, &OpError{
				Op:   opMap,
				Kind: KindBadMatrix,
				Path: path,
				Err:  fmt.Errorf("matrix %q: %w", name, err),
			}
		}
		built[name] = m
		return m, nil
	}

	plan := Plan{Path: path, Jobs: make([]Job, 0, len(yp.Comparisons))}
	names := make(map[string]int, len(yp.Comparisons))

	for i, c := range yp.Comparisons {
		prefix := fmt.Sprintf("comparisons[%d]", i)

		a, err := resolve(prefix+".a", c.A)
		if err != nil {
			return Plan{}, err
		}
		b, err := resolve(prefix+".b", c.B)
		if err != nil {
			return Plan{}, err
		}

		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = c.A + "-vs-" + c.B
		}
		if prev, dup := names[name]; dup {
			return Plan{}, invalidField(path, prefix+".name",
				fmt.Sprintf("duplicate comparison name %q (also comparisons[%d])", name, prev))
		}
		names[name] = i

		job := Job{Name: name, Left: c.A, Right: c.B, A: a, B: b}
		if c.Norm != nil {
			job.Norm = *c.Norm
			job.NormSupplied = true
		}
		plan.Jobs = append(plan.Jobs, job)
	}

	return plan, nil
}

func invalidField(path, field, msg string) error {
	return &OpError{
		Op:   opMap,
		Kind: KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}
