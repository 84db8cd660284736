// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/pglite/internal/cluster"
	"github.com/MKhiriev/pglite/internal/home"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PGLITE_"

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// StructuredConfig is the top-level configuration container for pglite.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json      — key in the optional JSON config file.
type StructuredConfig struct {
	// Log holds logger settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// Cluster holds settings of the local PostgreSQL cluster.
	Cluster Cluster `envPrefix:"CLUSTER_" json:"cluster"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: PGLITE_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: PGLITE_LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// Format is either "console" or "json".
	// Env: PGLITE_LOG_FORMAT
	Format string `env:"FORMAT" json:"format"`
}

// Cluster holds settings of the local PostgreSQL cluster.
type Cluster struct {
	// Home overrides the home directory that holds .pglite. When empty the
	// platform home directory is used.
	// Env: PGLITE_CLUSTER_HOME
	Home string `env:"HOME" json:"home"`

	// PgCtlPath is the pg_ctl executable used by `init` when none is given.
	// Env: PGLITE_CLUSTER_PG_CTL_PATH
	PgCtlPath string `env:"PG_CTL_PATH" json:"pg_ctl_path"`

	// Port is written into db.conf by `init`.
	// Env: PGLITE_CLUSTER_PORT
	Port string `env:"PORT" json:"port"`

	// ShutdownMode is the default mode of `stop` (smart, fast, immediate).
	// Env: PGLITE_CLUSTER_SHUTDOWN_MODE
	ShutdownMode string `env:"SHUTDOWN_MODE" json:"shutdown_mode"`
}

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{
			Level:  "info",
			Format: LogFormatConsole,
		},
		Cluster: Cluster{
			Port:         cluster.DefaultPort,
			ShutdownMode: string(cluster.ShutdownFast),
		},
	}
}

// HomeProvider returns the provider resolving the directory that holds
// .pglite.
func (cfg *StructuredConfig) HomeProvider() home.Provider {
	if cfg.Cluster.Home != "" {
		return home.Static(cfg.Cluster.Home)
	}

	return home.Default()
}

// ClusterOptions maps the cluster settings onto cluster.Options.
func (cfg *StructuredConfig) ClusterOptions() cluster.Options {
	return cluster.Options{
		Port:      cfg.Cluster.Port,
		PgCtlPath: cfg.Cluster.PgCtlPath,
	}
}

// Load assembles the configuration from defaults, the JSON file, the
// environment and flags, then validates it. flags may be nil.
func Load(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
