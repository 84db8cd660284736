// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cluster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/pglite/internal/dbconf"
	"github.com/MKhiriev/pglite/internal/home"
	"github.com/MKhiriev/pglite/internal/logger"
)

// DefaultPort is the port written into a new cluster's configuration.
const DefaultPort = "55432"

// Options tunes a Manager.
type Options struct {
	// Port is used by Init. Defaults to DefaultPort.
	Port string
	// PgCtlPath is used by Init when no explicit path is given. When empty,
	// PgCtlCandidates are searched.
	PgCtlPath string
	// PgCtlCandidates are the locations searched for pg_ctl.
	PgCtlCandidates []string
}

// Status describes a cluster as printed by `pglite status`.
type Status struct {
	Present bool
	Config  dbconf.Config
	Params  string
	Started bool
}

// Manager creates, starts, stops and removes the cluster of the current user.
type Manager struct {
	home   home.Provider
	reader *dbconf.Reader
	runner Runner
	opts   Options
	logger *logger.Logger
}

// NewManager returns a Manager for the home directory resolved by provider.
func NewManager(provider home.Provider, runner Runner, opts Options, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Port == "" {
		opts.Port = DefaultPort
	}

	return &Manager{
		home:   provider,
		reader: dbconf.NewReader(provider, log),
		runner: runner,
		opts:   opts,
		logger: log,
	}
}

// Layout returns the cluster locations for the current home directory.
func (m *Manager) Layout() Layout {
	return NewLayout(m.home.HomeDir())
}

// Params returns the connection-parameter string of the cluster.
func (m *Manager) Params() string {
	return m.reader.ClusterParams()
}

// Check reports whether the cluster is present.
func (m *Manager) Check() bool {
	l := m.Layout()
	return isDir(l.BaseDir) && isFile(l.ConfPath) && isDir(l.PGData)
}

// FindPgCtl returns the configured pg_ctl path or searches for one.
func (m *Manager) FindPgCtl() (string, error) {
	if m.opts.PgCtlPath != "" {
		return m.opts.PgCtlPath, nil
	}

	return findPgCtl(m.opts.PgCtlCandidates)
}

// Init creates the cluster with initdb. It does nothing when the cluster is
// already present. An empty pgCtlPath is resolved with FindPgCtl.
func (m *Manager) Init(ctx context.Context, pgCtlPath string) error {
	if m.Check() {
		m.logger.Info().Msg("cluster already present")
		return nil
	}

	if pgCtlPath == "" {
		var err error
		if pgCtlPath, err = m.FindPgCtl(); err != nil {
			return err
		}
	}

	l := m.Layout()
	if err := os.MkdirAll(l.BaseDir, 0o700); err != nil {
		return fmt.Errorf("error creating cluster directory: %w", err)
	}

	initdb := siblingTool(pgCtlPath, "initdb")
	if _, err := m.runner.Run(ctx, initdb, "-D", l.PGData, "-EUTF8"); err != nil {
		return fmt.Errorf("error initializing cluster: %w", err)
	}

	if err := m.appendServerSettings(l); err != nil {
		return err
	}

	cfg := dbconf.Config{
		dbconf.KeyPgCtlPath: pgCtlPath,
		dbconf.KeyPort:      m.opts.Port,
	}
	if err := dbconf.WriteFile(l.ConfPath, cfg); err != nil {
		return fmt.Errorf("error writing cluster config: %w", err)
	}

	m.logger.Info().Str("pgdata", l.PGData).Str("port", m.opts.Port).Msg("cluster initialized")
	return nil
}

func (m *Manager) appendServerSettings(l Layout) error {
	f, err := os.OpenFile(filepath.Join(l.PGData, "postgresql.conf"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error opening postgresql.conf: %w", err)
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "port=%s\nunix_socket_directories='%s'\n", m.opts.Port, l.BaseDir); err != nil {
		return fmt.Errorf("error writing postgresql.conf: %w", err)
	}

	return nil
}

// pgCtl returns the pg_ctl path recorded in db.conf.
func (m *Manager) pgCtl() (string, error) {
	p, ok := m.reader.Config().Lookup(dbconf.KeyPgCtlPath)
	if !ok || p == "" {
		return "", ErrPgCtlNotConfigured
	}

	return p, nil
}

// IsStarted reports whether pg_ctl sees a running server.
func (m *Manager) IsStarted(ctx context.Context) (bool, error) {
	pgCtl, err := m.pgCtl()
	if err != nil {
		return false, err
	}

	// pg_ctl status exits non-zero for a stopped server; stdout decides.
	out, _ := m.runner.Run(ctx, pgCtl, "status", "-D", m.Layout().PGData)
	return strings.Contains(out, "PID"), nil
}

// Start starts the server and waits until it accepts connections.
func (m *Manager) Start(ctx context.Context) error {
	if !m.Check() {
		return ErrClusterAbsent
	}

	started, err := m.IsStarted(ctx)
	if err != nil {
		return err
	}
	if started {
		m.logger.Debug().Msg("cluster already started")
		return nil
	}

	pgCtl, err := m.pgCtl()
	if err != nil {
		return err
	}

	l := m.Layout()
	if _, err := m.runner.Run(ctx, pgCtl, "start", "-w", "-D", l.PGData, "-l", l.LogFile); err != nil {
		return fmt.Errorf("error starting cluster: %w", err)
	}

	m.logger.Info().Msg("cluster started")
	return nil
}

// Stop shuts the server down using mode.
func (m *Manager) Stop(ctx context.Context, mode ShutdownMode) error {
	if _, err := ParseShutdownMode(string(mode)); err != nil {
		return err
	}
	if !m.Check() {
		return ErrClusterAbsent
	}

	started, err := m.IsStarted(ctx)
	if err != nil {
		return err
	}
	if !started {
		m.logger.Debug().Msg("cluster already stopped")
		return nil
	}

	pgCtl, err := m.pgCtl()
	if err != nil {
		return err
	}

	m.logger.Info().Str("mode", string(mode)).Msg("shutting down cluster")
	if _, err := m.runner.Run(ctx, pgCtl, "stop", "-D", m.Layout().PGData, "-m", string(mode)); err != nil {
		return fmt.Errorf("error stopping cluster: %w", err)
	}

	return nil
}

// Reset stops the server and removes the whole cluster directory. It does
// nothing when the cluster is absent.
func (m *Manager) Reset(ctx context.Context) error {
	if !m.Check() {
		return nil
	}

	if err := m.Stop(ctx, ShutdownFast); err != nil {
		return err
	}

	if err := os.RemoveAll(m.Layout().BaseDir); err != nil {
		return fmt.Errorf("error removing cluster: %w", err)
	}

	m.logger.Info().Msg("cluster removed")
	return nil
}

// Status collects the cluster state. When the server state cannot be
// queried, the returned Status still carries the configuration.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	if !m.Check() {
		return Status{}, nil
	}

	cfg := m.reader.Config()
	params, _ := dbconf.Params(cfg)

	status := Status{
		Present: true,
		Config:  cfg,
		Params:  params,
	}

	started, err := m.IsStarted(ctx)
	if err != nil {
		return status, err
	}
	status.Started = started

	return status, nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
