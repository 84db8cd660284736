// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package home resolves the current user's home directory.
//
// Resolution is expressed as a [Provider] so callers can inject a synthetic
// home directory in tests instead of depending on the process environment.
// [Default] picks the platform variant once, at startup:
//   - [EnvProvider] reads the single HOME variable;
//   - [DriveProvider] concatenates HOMEDRIVE and HOMEPATH.
//
// No provider validates its result. An unset variable yields an empty string.
package home
