// SPDX-License-Identifier: MIT

// Package dataset loads comparison plans: named distance matrices plus the
// list of pairs to compare, each with an optional externally computed norm.
package dataset

import "github.com/katalvlaran/distcmp/matrix"

// Job is one comparison to run.
type Job struct {
	Name         string
	Left, Right  string        // matrix names as written in the plan
	A, B         *matrix.Dense // resolved matrices; shared between jobs that reuse a name
	Norm         float64
	NormSupplied bool // false when the plan omitted norm
}

// Plan is a decoded, reference-checked comparison plan.
type Plan struct {
	Path string
	Jobs []Job
}

// MatrixNames returns the distinct matrix names used by the plan's jobs in
// first-use order.
func (p Plan) MatrixNames() []string {
	seen := make(map[string]struct{}, 2*len(p.Jobs))
	var out []string
	for _, j := range p.Jobs {
		for _, name := range []string{j.Left, j.Right} {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Matrix returns the resolved matrix registered under name by any job.
func (p Plan) Matrix(name string) (*matrix.Dense, bool) {
	for _, j := range p.Jobs {
		if j.Left == name {
			return j.A, true
		}
		if j.Right == name {
			return j.B, true
		}
	}
	return nil, false
}
