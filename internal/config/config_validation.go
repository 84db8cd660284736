// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/pglite/internal/cluster"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Log.Format != LogFormatConsole && cfg.Log.Format != LogFormatJSON {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	if _, err := cluster.ParseShutdownMode(cfg.Cluster.ShutdownMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClusterConfigs, err)
	}

	port, err := strconv.Atoi(cfg.Cluster.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q", ErrInvalidClusterConfigs, cfg.Cluster.Port)
	}

	return nil
}
