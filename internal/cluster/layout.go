package cluster

import (
	"path/filepath"

	"github.com/MKhiriev/pglite/internal/dbconf"
)

// Layout lists the filesystem locations of a cluster.
type Layout struct {
	// BaseDir is <home>/.pglite.
	BaseDir string
	// ConfPath is the db.conf file read by dbconf.
	ConfPath string
	// PGData is the PostgreSQL data directory.
	PGData string
	// LogFile receives the server log of `pg_ctl start`.
	LogFile string
}

// NewLayout returns the layout of the cluster owned by home.
func NewLayout(home string) Layout {
	base := home + "/" + dbconf.Dir

	return Layout{
		BaseDir:  base,
		ConfPath: dbconf.Path(home),
		PGData:   filepath.Join(base, "pg_data"),
		LogFile:  filepath.Join(base, "postgresql.log"),
	}
}
