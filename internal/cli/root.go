// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/pglite/internal/cluster"
	"github.com/MKhiriev/pglite/internal/config"
	"github.com/MKhiriev/pglite/internal/dbconf"
	"github.com/MKhiriev/pglite/internal/logger"
	"github.com/MKhiriev/pglite/models"
	"github.com/spf13/cobra"
)

// Container holds the dependencies shared by all commands.
type Container struct {
	Config  *config.StructuredConfig
	Logger  *logger.Logger
	Reader  *dbconf.Reader
	Manager *cluster.Manager
}

// NewRootCommand builds the pglite command tree. A nil runner executes the
// PostgreSQL tools as child processes.
func NewRootCommand(info models.AppBuildInfo, runner cluster.Runner) *cobra.Command {
	c := &Container{}

	rootCmd := &cobra.Command{
		Use:   "pglite",
		Short: "PGLite management tool",
		Long: `pglite manages a single-user PostgreSQL cluster stored in ~/.pglite.

The cluster settings are kept in ~/.pglite/db.conf; "pglite params" prints
the connection parameters PostgreSQL clients need to reach it.`,
		SilenceUsage: true,
	}

	flags := config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		var log *logger.Logger
		if cfg.Log.Format == config.LogFormatJSON {
			log = logger.NewLogger("pglite", cfg.Log.Level)
		} else {
			log = logger.NewConsoleLogger("pglite", cfg.Log.Level)
		}
		log.Debug().Any("config", cfg).Msg("received configs")

		r := runner
		if r == nil {
			r = cluster.NewExecRunner(log)
		}

		provider := cfg.HomeProvider()
		opts := cfg.ClusterOptions()
		opts.PgCtlCandidates = defaultPgCtlCandidates()

		c.Config = cfg
		c.Logger = log
		c.Reader = dbconf.NewReader(provider, log)
		c.Manager = cluster.NewManager(provider, r, opts, log)

		cmd.SetContext(log.WithContext(cmd.Context()))
		return nil
	}

	rootCmd.AddCommand(
		newParamsCommand(c),
		newStatusCommand(c),
		newCheckCommand(c),
		newInitCommand(c),
		newStartCommand(c),
		newStopCommand(c),
		newResetCommand(c),
		newVersionCommand(info),
	)

	return rootCmd
}
