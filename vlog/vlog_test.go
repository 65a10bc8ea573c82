// SPDX-License-Identifier: MIT
package vlog

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevel(t *testing.T) {
	require.NoError(t, Setup("debug", FormatAuto))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetupInvalidLevel(t *testing.T) {
	assert.Error(t, Setup("not-a-level", FormatAuto))
}

func TestSetupFormats(t *testing.T) {
	require.NoError(t, Setup("info", FormatJSON))
	_, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	require.NoError(t, Setup("info", FormatLogfmt))
	_, ok = logrus.StandardLogger().Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestSetupInvalidFormat(t *testing.T) {
	assert.ErrorIs(t, Setup("info", Format("bogus")), ErrInvalidFormat)
}

func TestSolveEntryCarriesRunID(t *testing.T) {
	entry := Solve("abc-123")
	assert.Equal(t, "abc-123", entry.Data["run_id"])
}
