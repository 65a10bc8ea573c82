// SPDX-License-Identifier: MIT
// Package vlog configures vass2's structured logging, a thin layer over
// logrus following the setup/level/formatter pattern of Watchtower's CLI
// (nicholas-fedor-watchtower/internal/flags.SetupLogging).
// The core algorithm packages (core, reachtree, paths, lps, etr, theory)
// never import this package directly; only reach and cmd/vass2 log, keeping
// the hard engineering free of logging side effects (spec.md §5: "no shared
// mutable state across calls").
package vlog

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects logrus's output formatter.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

// ErrInvalidFormat indicates an unrecognized Format value.
var ErrInvalidFormat = fmt.Errorf("vlog: invalid log format")

// Setup configures the standard logrus logger's level and formatter. It is
// called once by cmd/vass2's root command before any subcommand runs.
func Setup(level string, format Format) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("vlog: parsing level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)

	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case FormatLogfmt:
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case FormatAuto, "":
		logrus.SetFormatter(&logrus.TextFormatter{EnvironmentOverrideColors: true})
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	return nil
}

// Solve returns the logger entry reach.Solve attaches its per-run fields to
// (paths_found, cycles_found, lps_generated, lps_discharged, elapsed —
// SPEC_FULL.md §4 "Logging"), tagged with a stable run identifier for
// correlating a solve's log lines.
func Solve(runID string) *logrus.Entry {
	return logrus.WithField("run_id", runID)
}
