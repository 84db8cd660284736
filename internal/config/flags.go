package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags defines the configuration flags on fs and returns the config
// they populate once fs is parsed.
//
// Flags:
//
//	-c/--config     json file path with configs
//	--home          directory holding .pglite (defaults to the user's home)
//	--log-level     zerolog level name
//	--log-format    console or json
//	--pg-ctl        pg_ctl executable used by init
//	--port          port written into db.conf by init
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Cluster.Home, "home", "", "Directory holding .pglite")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", "", "Log format (console, json)")
	fs.StringVar(&cfg.Cluster.PgCtlPath, "pg-ctl", "", "Path to the pg_ctl executable")
	fs.StringVar(&cfg.Cluster.Port, "port", "", "Port of a newly initialized cluster")

	return cfg
}
