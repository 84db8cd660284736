// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dbconf reads the per-user pglite cluster file
// (<home>/.pglite/db.conf) and derives the connection-parameter string used by
// PostgreSQL clients.
//
// The file format is a list of `key = value` lines. Lines without '=' are
// ignored, keys and values are trimmed of ASCII whitespace, and the last
// occurrence of a key wins. There are no comments, quoting or escapes.
//
// Reading never fails: a missing or unreadable file is an empty config, and a
// config without a "port" key produces an empty connection string.
package dbconf
