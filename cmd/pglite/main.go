package main

import (
	"os"

	"github.com/MKhiriev/pglite/internal/cli"
	"github.com/MKhiriev/pglite/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	root := cli.NewRootCommand(info, nil)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
