package cluster

import "errors"

// Errors returned by [Manager] operations.
var (
	// ErrClusterAbsent indicates an operation that needs an initialized cluster.
	ErrClusterAbsent = errors.New("cluster not present")
	// ErrPgCtlNotFound indicates that no pg_ctl executable was found in the
	// well-known install locations.
	ErrPgCtlNotFound = errors.New("can't find pg_ctl")
	// ErrPgCtlNotConfigured indicates a db.conf without a pg_ctl_path entry.
	ErrPgCtlNotConfigured = errors.New("pg_ctl path not configured")
	// ErrInvalidShutdownMode indicates a shutdown mode other than smart, fast
	// or immediate.
	ErrInvalidShutdownMode = errors.New("invalid shutdown mode")
)
