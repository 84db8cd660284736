// Package cli implements the pglite command line on top of spf13/cobra.
//
// Every command shares one dependency set, built from the merged
// configuration before the command runs: a logger, a dbconf.Reader and a
// cluster.Manager.
package cli
