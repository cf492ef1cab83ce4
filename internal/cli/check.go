// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distcmp/compare"
	"github.com/katalvlaran/distcmp/internal/dataset"
	"github.com/katalvlaran/distcmp/internal/logger"
	"github.com/katalvlaran/distcmp/matrix"
)

func checkCmd() *cobra.Command {
	var (
		file string
		tol  tolerances
	)

	c := &cobra.Command{
		Use:   "check",
		Short: "Validate a plan file's matrices without computing ratios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := tol.options(); err != nil {
				return err
			}

			plan, err := dataset.Load(file)
			if err != nil {
				return err
			}

			problems := checkPlan(cmd.OutOrStdout(), plan, tol)
			if problems > 0 {
				return fmt.Errorf("%d problem(s) found in %s", problems, plan.Path)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Plan file (YAML) to validate (required)")
	tol.bind(c)

	_ = c.MarkFlagRequired("file")
	return c
}

// checkPlan validates every referenced matrix on its own, then the shape
// pairing of each job. It returns the number of problems written to w.
func checkPlan(w io.Writer, plan dataset.Plan, tol tolerances) int {
	problems := 0
	fail := func(format string, args ...any) {
		problems++
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	}

	for _, name := range plan.MatrixNames() {
		m, _ := plan.Matrix(name)
		r, c := m.Shape()

		if err := checkMatrix(m, tol); err != nil {
			fail("matrix %s (%dx%d): %v", name, r, c, err)
			continue
		}
		mean, _ := matrix.UpperTriangleMean(m)
		_, _ = fmt.Fprintf(w, "matrix %s (%dx%d): ok, mean pairwise distance %.4f\n", name, r, c, mean)
	}

	for _, job := range plan.Jobs {
		if err := matrix.ValidateSameShape(job.A, job.B); err != nil {
			fail("comparison %s: %v", job.Name, fmt.Errorf("%w: %w", compare.ErrShapeMismatch, err))
		}
	}

	logger.L().Info("plan.checked", "path", plan.Path, "problems", problems)
	return problems
}

// checkMatrix applies the per-operand part of Compare's validation.
func checkMatrix(m *matrix.Dense, tol tolerances) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("%w: %w", compare.ErrShapeMismatch, err)
	}
	if err := matrix.ValidateSymmetricClose(m, tol.rtol, tol.atol); err != nil {
		return fmt.Errorf("%w: %w", compare.ErrAsymmetricMatrix, err)
	}
	if m.Rows() <= 1 {
		return compare.ErrInsufficientSize
	}
	return nil
}
