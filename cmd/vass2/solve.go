// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vass2/config"
	"github.com/katalvlaran/vass2/reach"
)

func newSolveCommand(cfg *config.Config) *cobra.Command {
	var x, y int64
	var hasX, hasY bool

	cmd := &cobra.Command{
		Use:   "solve <vass.json>",
		Short: "Decide reachability of a target configuration for a 2-VASS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], cfg, hasX, x, hasY, y)
		},
	}

	cmd.Flags().Int64Var(&x, "x", 0, "override the target X counter (default: end_x - start_x from the VASS file)")
	cmd.Flags().Int64Var(&y, "y", 0, "override the target Y counter (default: end_y - start_y from the VASS file)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasX = cmd.Flags().Changed("x")
		hasY = cmd.Flags().Changed("y")
	}

	return cmd
}

func runSolve(cmd *cobra.Command, path string, cfg *config.Config, hasX bool, x int64, hasY bool, y int64) error {
	f, err := os.Open(path)
	if err != nil {
		return &cliError{code: 2, err: fmt.Errorf("%w: opening %s: %v", reach.ErrMalformedInput, path, err)}
	}
	defer f.Close()

	v, err := reach.LoadVASS(f)
	if err != nil {
		return &cliError{code: 2, err: err}
	}

	if hasX {
		v.EndX = v.StartX + x
	}
	if hasY {
		v.EndY = v.StartY + y
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SolverTimeout)
	defer cancel()

	witness, stats, err := reach.Solve(ctx, v, reach.Options{MaxLPS: cfg.MaxLPS})
	if ce := classifyRunErr(err); ce != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "vass2: %v (paths=%d cycles=%d lps=%d)\n",
			err, stats.PathsFound, stats.CyclesFound, stats.LPSGenerated)

		return ce
	}

	fmt.Fprintf(cmd.OutOrStdout(), "reachable: run=%s lps_discharged=%d\n", witness.RunID, stats.LPSDischarged)
	for name, value := range witness.Model {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s = %g\n", name, value)
	}

	return nil
}
