// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dbconf

import (
	"os"

	"github.com/MKhiriev/pglite/internal/home"
	"github.com/MKhiriev/pglite/internal/logger"
)

// ReadFile parses the config file at path. A file that cannot be opened is an
// empty config. A read error part-way through keeps the entries read so far.
func ReadFile(path string, log *logger.Logger) Config {
	if log == nil {
		log = logger.Nop()
	}

	f, err := os.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cluster config not available")
		return make(Config)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cluster config read interrupted")
	}

	return cfg
}

// Reader resolves the cluster config of the current user. Every call re-reads
// the file, so a Reader is safe for concurrent use.
type Reader struct {
	home   home.Provider
	logger *logger.Logger
}

// NewReader returns a Reader resolving the home directory through provider.
// A nil log disables logging.
func NewReader(provider home.Provider, log *logger.Logger) *Reader {
	if log == nil {
		log = logger.Nop()
	}

	return &Reader{home: provider, logger: log}
}

// Path returns the config file location for the current home directory.
func (r *Reader) Path() string {
	return Path(r.home.HomeDir())
}

// Config reads and parses the config file.
func (r *Reader) Config() Config {
	return ReadFile(r.Path(), r.logger)
}

// LookupClusterParams returns the connection-parameter string and whether a
// port is configured at all. A configured but empty port yields
// ("host=localhost port=", true).
func (r *Reader) LookupClusterParams() (string, bool) {
	return Params(r.Config())
}

// ClusterParams returns "host=localhost port=<port>" or an empty string when
// no port is configured.
func (r *Reader) ClusterParams() string {
	params, _ := r.LookupClusterParams()
	return params
}

// ClusterParams reads the current user's cluster config using the platform
// home directory and returns its connection-parameter string.
func ClusterParams() string {
	return NewReader(home.Default(), nil).ClusterParams()
}
