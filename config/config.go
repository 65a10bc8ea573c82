// SPDX-License-Identifier: MIT
// Package config binds vass2's few runtime knobs (solver timeout, the LPS
// enumeration cap, log level/format) through viper, following the
// env-var/default binding idiom of Watchtower's CLI flag handling
// (nicholas-fedor-watchtower/internal/flags.envDuration/envInt/SetDefaults).
// Unlike Watchtower's hundred-odd Docker/notification flags, vass2 only has
// a handful of knobs, so one Config struct plus a single Load replaces the
// package-level global-viper style with a value the CLI can construct,
// override from flags, and pass down explicitly (no import-time side effects).
package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "VASS2"

	// DefaultSolverTimeout is the deadline cmd/vass2 puts on one command's
	// solving: the whole reach.Solve run for "solve", the single LPS check
	// for "lps" (spec.md §5, "Suspension points... cancellable via a
	// caller-supplied deadline").
	DefaultSolverTimeout = 5 * time.Second

	// DefaultMaxLPS is unbounded: SPEC_FULL.md Open Question 2 resolves the
	// spec's "LPS enumeration can be exponential" note as an opt-in cap, not
	// a forced default.
	DefaultMaxLPS = 0

	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

// Config holds every runtime knob vass2's CLI exposes, bound from
// VASS2_-prefixed environment variables with flag overrides taking
// precedence (set by cmd/vass2 after parsing).
type Config struct {
	SolverTimeout time.Duration
	MaxLPS        int
	LogLevel      string
	LogFormat     string
}

// Load builds a Config from environment variables (VASS2_SOLVER_TIMEOUT,
// VASS2_MAX_LPS, VASS2_LOG_LEVEL, VASS2_LOG_FORMAT), falling back to the
// package defaults for anything unset. A fresh *viper.Viper is used per
// call (rather than viper's package-level singleton) so concurrent tests
// and repeated CLI invocations within one process never interfere.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("solver_timeout", DefaultSolverTimeout)
	v.SetDefault("max_lps", DefaultMaxLPS)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)

	return Config{
		SolverTimeout: v.GetDuration("solver_timeout"),
		MaxLPS:        v.GetInt("max_lps"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
	}
}
