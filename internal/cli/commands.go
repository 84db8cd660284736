package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/MKhiriev/pglite/internal/cluster"
	"github.com/MKhiriev/pglite/models"
	"github.com/spf13/cobra"
)

// ErrPortNotConfigured is returned by `params --strict` when db.conf has no
// port entry.
var ErrPortNotConfigured = errors.New("port not configured")

func defaultPgCtlCandidates() []string {
	return cluster.PgCtlCandidates(runtime.GOOS, os.Getenv)
}

func newParamsCommand(c *Container) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the connection parameters of the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, ok := c.Reader.LookupClusterParams()
			if !ok && strict {
				return fmt.Errorf("%w in %s", ErrPortNotConfigured, c.Reader.Path())
			}

			fmt.Fprintln(cmd.OutOrStdout(), params)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when no port is configured")
	return cmd
}

func newStatusCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the status of the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.Manager.Status(cmd.Context())
			out := cmd.OutOrStdout()

			if !st.Present {
				fmt.Fprintln(out, "DB        \tAbsent")
				return err
			}

			fmt.Fprintln(out, "DB        \tPresent")
			keys := make([]string, 0, len(st.Config))
			for k := range st.Config {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%-10s\t%s\n", k, st.Config[k])
			}
			fmt.Fprintf(out, "%-10s\t%s\n", "params", st.Params)

			if err != nil {
				return err
			}
			if st.Started {
				fmt.Fprintln(out, "Started")
			} else {
				fmt.Fprintln(out, "Stopped")
			}

			return nil
		},
	}
}

func newCheckCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the cluster exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Manager.Check() {
				fmt.Fprintln(cmd.OutOrStdout(), "present")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "absent")
			return nil
		},
	}
}

func newInitCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path_to_pg_ctl]",
		Short: "Initialize the cluster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pgCtl string
			if len(args) == 1 {
				pgCtl = args[0]
			}

			return c.Manager.Init(cmd.Context(), pgCtl)
		},
	}
}

func newStartCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Manager.Start(cmd.Context())
		},
	}
}

func newStopCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:       "stop [mode]",
		Short:     "Stop the cluster (mode=smart|fast|immediate)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(cluster.ShutdownSmart), string(cluster.ShutdownFast), string(cluster.ShutdownImmediate)},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := c.Config.Cluster.ShutdownMode
			if len(args) == 1 {
				raw = args[0]
			}

			mode, err := cluster.ParseShutdownMode(raw)
			if err != nil {
				return err
			}

			return c.Manager.Stop(cmd.Context(), mode)
		},
	}
}

func newResetCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Manager.Reset(cmd.Context())
		},
	}
}

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}
