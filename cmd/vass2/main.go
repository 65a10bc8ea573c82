// SPDX-License-Identifier: MIT
// Command vass2 is the CLI front-end over package reach: "solve" decides
// reachability for a whole VASS, "lps" discharges one pre-compiled Linear
// Path Scheme against an explicit target, and "version" prints the build
// version (spec.md §6). Exit codes follow spec.md §6 exactly: 0 success
// (reachable), 1 unreachable, 2 input error, 3 solver timeout.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	root := newRootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return exitCodeFor(err)
	}

	return 0
}
