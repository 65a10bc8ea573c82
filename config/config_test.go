// SPDX-License-Identifier: MIT
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, DefaultSolverTimeout, cfg.SolverTimeout)
	assert.Equal(t, DefaultMaxLPS, cfg.MaxLPS)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VASS2_SOLVER_TIMEOUT", "2s")
	t.Setenv("VASS2_MAX_LPS", "10")
	t.Setenv("VASS2_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, 2*time.Second, cfg.SolverTimeout)
	assert.Equal(t, 10, cfg.MaxLPS)
	assert.Equal(t, "debug", cfg.LogLevel)
}
