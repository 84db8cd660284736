package cluster

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MKhiriev/pglite/internal/logger"
)

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	logger *logger.Logger
}

// NewExecRunner returns an ExecRunner logging through log.
func NewExecRunner(log *logger.Logger) *ExecRunner {
	if log == nil {
		log = logger.Nop()
	}

	return &ExecRunner{logger: log}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug().Str("cmd", name).Strs("args", args).Msg("running command")

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), fmt.Errorf("error running %s: %w", name, err)
		}
		return stdout.String(), fmt.Errorf("error running %s: %w: %s", name, err, msg)
	}

	return stdout.String(), nil
}
