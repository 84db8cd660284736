package cluster

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

var postgresVersions = []string{"17", "16", "15", "14", "13", "12", "11", "10", "9.6", "9.5"}

// PgCtlCandidates returns the well-known pg_ctl locations for goos, most
// recent PostgreSQL versions first. getenv resolves install roots on Windows.
func PgCtlCandidates(goos string, getenv func(string) string) []string {
	var paths []string

	switch goos {
	case "linux":
		for _, v := range postgresVersions {
			paths = append(paths, "/usr/lib/postgresql/"+v+"/bin/pg_ctl")
		}
		paths = append(paths, "/usr/pgsql/bin/pg_ctl", "/usr/bin/pg_ctl")
	case "freebsd":
		paths = append(paths, "/usr/local/bin/pg_ctl")
	case "darwin":
		paths = append(paths, "/opt/homebrew/bin/pg_ctl", "/usr/local/bin/pg_ctl")
	case "windows":
		if root := getenv("OSGEO4W_ROOT"); root != "" {
			paths = append(paths, filepath.Join(root, "bin", "pg_ctl.exe"))
		}
		if pf := getenv("ProgramFiles"); pf != "" {
			for _, v := range postgresVersions {
				paths = append(paths, filepath.Join(pf, "PostgreSQL", v, "bin", "pg_ctl.exe"))
			}
		}
	}

	return paths
}

// findPgCtl returns the first regular file among candidates, falling back to
// a PATH lookup.
func findPgCtl(candidates []string) (string, error) {
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, nil
		}
	}

	if p, err := exec.LookPath("pg_ctl"); err == nil {
		return p, nil
	}

	return "", ErrPgCtlNotFound
}

// siblingTool returns the path of tool next to pgCtl, keeping its extension.
func siblingTool(pgCtl, tool string) string {
	ext := filepath.Ext(pgCtl)
	if runtime.GOOS != "windows" {
		ext = ""
	}

	return filepath.Join(filepath.Dir(pgCtl), tool+ext)
}
