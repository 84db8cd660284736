// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package home

import (
	"os"
	"runtime"
)

// Environment variables consumed by the providers.
const (
	EnvHome      = "HOME"
	EnvHomeDrive = "HOMEDRIVE"
	EnvHomePath  = "HOMEPATH"
)

// GetenvFunc looks up an environment variable. os.Getenv satisfies it.
type GetenvFunc func(key string) string

// EnvProvider resolves the home directory from the HOME variable.
type EnvProvider struct {
	Getenv GetenvFunc
}

// NewEnvProvider returns an EnvProvider reading the process environment.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{Getenv: os.Getenv}
}

// HomeDir returns $HOME verbatim.
func (p *EnvProvider) HomeDir() string {
	return getenv(p.Getenv)(EnvHome)
}

// DriveProvider resolves the home directory on platforms that split it into a
// drive and a path variable.
type DriveProvider struct {
	Getenv GetenvFunc
}

// NewDriveProvider returns a DriveProvider reading the process environment.
func NewDriveProvider() *DriveProvider {
	return &DriveProvider{Getenv: os.Getenv}
}

// HomeDir returns $HOMEDRIVE followed by $HOMEPATH, with no separator.
func (p *DriveProvider) HomeDir() string {
	get := getenv(p.Getenv)
	return get(EnvHomeDrive) + get(EnvHomePath)
}

// Static is a Provider that always returns the same directory.
type Static string

// HomeDir returns the directory the Static value was built from.
func (s Static) HomeDir() string {
	return string(s)
}

// Default returns the provider matching the running platform.
func Default() Provider {
	return ForOS(runtime.GOOS)
}

// ForOS returns the provider variant used on goos.
func ForOS(goos string) Provider {
	if goos == "windows" {
		return NewDriveProvider()
	}

	return NewEnvProvider()
}

func getenv(fn GetenvFunc) GetenvFunc {
	if fn == nil {
		return os.Getenv
	}

	return fn
}
