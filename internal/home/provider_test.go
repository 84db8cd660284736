package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) GetenvFunc {
	return func(key string) string {
		return vars[key]
	}
}

func TestEnvProvider_HomeDir(t *testing.T) {
	p := &EnvProvider{Getenv: fakeEnv(map[string]string{EnvHome: "/home/alice"})}

	assert.Equal(t, "/home/alice", p.HomeDir())
}

func TestEnvProvider_UnsetReturnsEmpty(t *testing.T) {
	p := &EnvProvider{Getenv: fakeEnv(nil)}

	assert.Empty(t, p.HomeDir())
}

func TestEnvProvider_NilGetenvUsesProcessEnv(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/synthetic-home")

	p := &EnvProvider{}

	assert.Equal(t, "/tmp/synthetic-home", p.HomeDir())
}

func TestNewEnvProvider_ReadsProcessEnv(t *testing.T) {
	t.Setenv(EnvHome, "/srv/pg")

	assert.Equal(t, "/srv/pg", NewEnvProvider().HomeDir())
}

func TestDriveProvider_HomeDir(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "drive and path concatenated without separator",
			vars: map[string]string{EnvHomeDrive: "C:", EnvHomePath: `\Users\bob`},
			want: `C:\Users\bob`,
		},
		{
			name: "only drive set",
			vars: map[string]string{EnvHomeDrive: "D:"},
			want: "D:",
		},
		{
			name: "nothing set",
			vars: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &DriveProvider{Getenv: fakeEnv(tt.vars)}
			assert.Equal(t, tt.want, p.HomeDir())
		})
	}
}

func TestNewDriveProvider_ReadsProcessEnv(t *testing.T) {
	t.Setenv(EnvHomeDrive, "E:")
	t.Setenv(EnvHomePath, `\pg`)

	assert.Equal(t, `E:\pg`, NewDriveProvider().HomeDir())
}

func TestStatic_HomeDir(t *testing.T) {
	var p Provider = Static("/opt/home")

	assert.Equal(t, "/opt/home", p.HomeDir())
}

func TestForOS_SelectsVariant(t *testing.T) {
	_, isDrive := ForOS("windows").(*DriveProvider)
	require.True(t, isDrive)

	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		_, isEnv := ForOS(goos).(*EnvProvider)
		assert.True(t, isEnv, goos)
	}
}

func TestDefault_NotNil(t *testing.T) {
	assert.NotNil(t, Default())
}
