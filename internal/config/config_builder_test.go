package config

import (
	"path/filepath"
	"testing"

	"github.com/MKhiriev/pglite/internal/cluster"
	"github.com/MKhiriev/pglite/internal/home"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Priority(t *testing.T) {
	// Arrange: JSON < env < flags
	p := writeJSON(t, `{
		"log": { "level": "warn" },
		"cluster": { "port": "6000", "pg_ctl_path": "/json/pg_ctl", "home": "/json/home" }
	}`)
	setEnvVars(t, map[string]string{
		"PGLITE_CONFIG":       p,
		"PGLITE_CLUSTER_PORT": "6001",
		"PGLITE_CLUSTER_HOME": "/env/home",
	})
	flags := &StructuredConfig{Cluster: Cluster{Home: "/flag/home"}}

	// Act
	cfg, err := Load(flags)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, LogFormatConsole, cfg.Log.Format)
	assert.Equal(t, "/json/pg_ctl", cfg.Cluster.PgCtlPath)
	assert.Equal(t, "6001", cfg.Cluster.Port)
	assert.Equal(t, "/flag/home", cfg.Cluster.Home)
	assert.Equal(t, string(cluster.ShutdownFast), cfg.Cluster.ShutdownMode)
	assert.Equal(t, p, cfg.JSONFilePath)
}

func TestLoad_FlagJSONPathWinsOverEnv(t *testing.T) {
	envJSON := writeJSON(t, `{"cluster": {"port": "1111"}}`)
	flagJSON := writeJSON(t, `{"cluster": {"port": "2222"}}`)
	t.Setenv("PGLITE_CONFIG", envJSON)

	cfg, err := Load(&StructuredConfig{JSONFilePath: flagJSON})

	require.NoError(t, err)
	assert.Equal(t, "2222", cfg.Cluster.Port)
}

func TestLoad_MissingJSON(t *testing.T) {
	_, err := Load(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		flags   *StructuredConfig
		wantErr error
	}{
		{name: "bad level", flags: &StructuredConfig{Log: Log{Level: "loud"}}, wantErr: ErrInvalidLogConfigs},
		{name: "bad format", flags: &StructuredConfig{Log: Log{Format: "xml"}}, wantErr: ErrInvalidLogConfigs},
		{name: "bad mode", flags: &StructuredConfig{Cluster: Cluster{ShutdownMode: "gentle"}}, wantErr: ErrInvalidClusterConfigs},
		{name: "non numeric port", flags: &StructuredConfig{Cluster: Cluster{Port: "http"}}, wantErr: ErrInvalidClusterConfigs},
		{name: "port out of range", flags: &StructuredConfig{Cluster: Cluster{Port: "70000"}}, wantErr: ErrInvalidClusterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.flags)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_HomeProvider(t *testing.T) {
	cfg := Defaults()
	assert.IsType(t, home.Default(), cfg.HomeProvider())

	cfg.Cluster.Home = "/custom"
	assert.Equal(t, home.Static("/custom"), cfg.HomeProvider())
}

func TestStructuredConfig_ClusterOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Cluster.PgCtlPath = "/bin/pg_ctl"

	assert.Equal(t, cluster.Options{Port: cluster.DefaultPort, PgCtlPath: "/bin/pg_ctl"}, cfg.ClusterOptions())
}
