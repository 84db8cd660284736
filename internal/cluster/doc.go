// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cluster manages the lifecycle of the per-user PostgreSQL cluster
// stored under <home>/.pglite.
//
// A cluster is "present" when its base directory, its db.conf file and its
// pg_data directory all exist. The [Manager] creates one with initdb and
// drives it with pg_ctl, recording the pg_ctl location and the listening port
// in db.conf so that [dbconf.Reader] can derive connection parameters from it.
package cluster
