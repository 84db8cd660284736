// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"PGLITE_CONFIG":                "/path/to/config.json",
		"PGLITE_LOG_LEVEL":             "debug",
		"PGLITE_LOG_FORMAT":            "json",
		"PGLITE_CLUSTER_HOME":          "/srv/pg",
		"PGLITE_CLUSTER_PG_CTL_PATH":   "/usr/lib/postgresql/16/bin/pg_ctl",
		"PGLITE_CLUSTER_PORT":          "5433",
		"PGLITE_CLUSTER_SHUTDOWN_MODE": "smart",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/srv/pg", cfg.Cluster.Home)
	assert.Equal(t, "/usr/lib/postgresql/16/bin/pg_ctl", cfg.Cluster.PgCtlPath)
	assert.Equal(t, "5433", cfg.Cluster.Port)
	assert.Equal(t, "smart", cfg.Cluster.ShutdownMode)
}

func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CLUSTER_PORT": "9999",
		"LOG_LEVEL":    "trace",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.Cluster.Port)
	assert.Empty(t, cfg.Log.Level)
}
