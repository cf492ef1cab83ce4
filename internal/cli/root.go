// SPDX-License-Identifier: MIT

// Package cli wires the distcmp command line: plan loading, comparison, and
// report rendering.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distcmp/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		logJSON bool
		cleanup func()
	)

	cmd := &cobra.Command{
		Use:          "distcmp",
		Short:        "distcmp - put a Frobenius-norm difference between distance matrices in context",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cleanup = logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Debug:  debug,
				JSON:   logJSON,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	cmd.AddCommand(runCmd(), checkCmd())
	return cmd
}
