package cluster

//go:generate mockgen -source=interfaces.go -destination=../mock/cluster_runner_mock.go -package=mock

import "context"

// Runner executes external PostgreSQL tools.
type Runner interface {
	// Run executes name with args and returns its standard output. Output is
	// returned even when the command exits with a non-zero status.
	Run(ctx context.Context, name string, args ...string) (string, error)
}
