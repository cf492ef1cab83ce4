// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distcmp/compare"
	"github.com/katalvlaran/distcmp/internal/dataset"
	"github.com/katalvlaran/distcmp/internal/logger"
	"github.com/katalvlaran/distcmp/internal/report"
	"github.com/katalvlaran/distcmp/matrix"
)

func runCmd() *cobra.Command {
	var (
		file      string
		format    string
		keepGoing bool
		tol       tolerances
	)

	c := &cobra.Command{
		Use:   "run",
		Short: "Compare every pair listed in a plan file and print the statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := tol.options()
			if err != nil {
				return err
			}

			plan, err := dataset.Load(file)
			if err != nil {
				return err
			}
			logger.L().Info("plan.loaded", "path", plan.Path, "jobs", len(plan.Jobs))

			outcomes := runJobs(plan, compare.New(opts...), keepGoing)

			if err := report.Write(cmd.OutOrStdout(), format, outcomes); err != nil {
				return err
			}

			if failed := countFailures(outcomes); failed > 0 {
				if skipped := len(plan.Jobs) - len(outcomes); skipped > 0 {
					return fmt.Errorf("%d of %d comparison(s) failed, %d skipped", failed, len(plan.Jobs), skipped)
				}
				return fmt.Errorf("%d of %d comparison(s) failed", failed, len(plan.Jobs))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Plan file (YAML) with matrices and comparisons (required)")
	c.Flags().StringVar(&format, "format", report.FormatPlain, "Output format: plain|pretty|json")
	c.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue with the next comparison after a failure")
	tol.bind(c)

	_ = c.MarkFlagRequired("file")
	return c
}

// runJobs compares the plan's jobs in order. Without keepGoing it stops after
// the first failed job; the failed outcome is still returned.
func runJobs(plan dataset.Plan, cmp *compare.Comparator, keepGoing bool) []report.Outcome {
	log := logger.L()
	outcomes := make([]report.Outcome, 0, len(plan.Jobs))

	for _, job := range plan.Jobs {
		norm, derived := job.Norm, false
		if !job.NormSupplied {
			// On error (nil or mismatched shapes) Compare reports the problem below.
			if d, err := matrix.FrobeniusDistance(job.A, job.B); err == nil {
				norm, derived = d, true
				log.Info("norm.derived", "job", job.Name, "frobenius", d)
			}
		}

		log.Debug("job.start", "job", job.Name, "a", job.Left, "b", job.Right, "norm", norm)
		res, err := cmp.Compare(job.A, job.B, norm)
		outcomes = append(outcomes, report.Outcome{
			Name:        job.Name,
			Result:      res,
			Err:         err,
			NormDerived: derived,
		})

		if err != nil {
			log.Warn("job.failed", "job", job.Name, "err", err)
			if !keepGoing {
				break
			}
			continue
		}
		log.Debug("job.done", "job", job.Name,
			"overall_mean", res.OverallMean, "relative_percent", res.RelativePercent)
	}

	return outcomes
}

func countFailures(outcomes []report.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
