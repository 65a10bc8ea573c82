// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vass2/config"
	"github.com/katalvlaran/vass2/reach"
	"github.com/katalvlaran/vass2/theory"
	"github.com/katalvlaran/vass2/vlog"
)

// cliError pairs an error with the process exit code it maps to
// (spec.md §6's 0/1/2/3 table), so run() never has to re-derive the
// classification cobra's plain `error` return would otherwise lose.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}

	return 2 // cobra's own flag-parsing errors are always input errors
}

func newRootCommand() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "vass2",
		Short:         "Decide and witness reachability for a 2-dimensional Vector Addition System with States",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: auto, json, logfmt")
	root.PersistentFlags().DurationVar(&cfg.SolverTimeout, "timeout", cfg.SolverTimeout, "solver deadline (whole run for solve, the single LPS for lps)")
	root.PersistentFlags().IntVar(&cfg.MaxLPS, "max-lps", cfg.MaxLPS, "cap on compiled LPS count, 0 = unbounded")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := vlog.Setup(cfg.LogLevel, vlog.Format(cfg.LogFormat)); err != nil {
			return &cliError{code: 2, err: err}
		}

		return nil
	}

	root.AddCommand(newSolveCommand(&cfg))
	root.AddCommand(newLPSCommand(&cfg))
	root.AddCommand(newVersionCommand())

	return root
}

// classifyRunErr maps a reach.Solve/etr/theory error to its spec.md §6 exit
// code; every other error (malformed input, a bad flag value) is an input
// error.
func classifyRunErr(err error) *cliError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, reach.ErrUnreachable):
		return &cliError{code: 1, err: err}
	case errors.Is(err, theory.ErrTimeout):
		return &cliError{code: 3, err: err}
	case errors.Is(err, reach.ErrMalformedInput):
		return &cliError{code: 2, err: err}
	default:
		return &cliError{code: 2, err: err}
	}
}
