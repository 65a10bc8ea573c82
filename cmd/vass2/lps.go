// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vass2/config"
	"github.com/katalvlaran/vass2/etr"
	"github.com/katalvlaran/vass2/reach"
	"github.com/katalvlaran/vass2/theory"
)

func newLPSCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lps <lps.json> <X> <Y>",
		Short: "Discharge a single pre-compiled Linear Path Scheme against a target counter pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLPS(cmd, args, cfg)
		},
	}
}

func runLPS(cmd *cobra.Command, args []string, cfg *config.Config) error {
	path := args[0]

	targetX, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return &cliError{code: 2, err: fmt.Errorf("%w: X: %v", reach.ErrMalformedInput, err)}
	}
	targetY, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return &cliError{code: 2, err: fmt.Errorf("%w: Y: %v", reach.ErrMalformedInput, err)}
	}

	f, err := os.Open(path)
	if err != nil {
		return &cliError{code: 2, err: fmt.Errorf("%w: opening %s: %v", reach.ErrMalformedInput, path, err)}
	}
	defer f.Close()

	l, err := reach.LoadLPS(f)
	if err != nil {
		return &cliError{code: 2, err: err}
	}

	formula, err := etr.Encode(l, targetX, targetY)
	if err != nil {
		return &cliError{code: 2, err: err}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SolverTimeout)
	defer cancel()

	result, model, err := formula.Check(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "vass2: %v\n", err)

		return classifyRunErr(err)
	}
	if result != theory.Sat {
		fmt.Fprintln(cmd.ErrOrStderr(), "vass2: unreachable")

		return &cliError{code: 1, err: reach.ErrUnreachable}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "reachable")
	for name, value := range model {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s = %g\n", name, value)
	}

	return nil
}
