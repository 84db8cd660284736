package cluster

import "fmt"

// ShutdownMode is a pg_ctl stop mode.
type ShutdownMode string

// Shutdown modes understood by pg_ctl.
const (
	ShutdownSmart     ShutdownMode = "smart"
	ShutdownFast      ShutdownMode = "fast"
	ShutdownImmediate ShutdownMode = "immediate"
)

// ParseShutdownMode validates s. An empty s selects ShutdownFast.
func ParseShutdownMode(s string) (ShutdownMode, error) {
	switch ShutdownMode(s) {
	case "":
		return ShutdownFast, nil
	case ShutdownSmart, ShutdownFast, ShutdownImmediate:
		return ShutdownMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidShutdownMode, s)
	}
}
