package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClusterConfigs indicates an invalid port or shutdown mode.
	ErrInvalidClusterConfigs = errors.New("invalid cluster configuration")
)
