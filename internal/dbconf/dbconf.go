// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dbconf

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	// Dir is the cluster directory name inside the home directory.
	Dir = ".pglite"
	// FileName is the cluster config file name inside Dir.
	FileName = "db.conf"

	// KeyPort holds the port the local cluster listens on.
	KeyPort = "port"
	// KeyPgCtlPath holds the path to the pg_ctl executable managing the cluster.
	KeyPgCtlPath = "pg_ctl_path"

	paramsPrefix = "host=localhost port="

	// asciiSpace matches the C locale isspace class.
	asciiSpace = " \t\n\v\f\r"
)

// Entry is a single key/value pair of a config file.
type Entry struct {
	Key   string
	Value string
}

// Config maps config keys to their trimmed values.
type Config map[string]string

// Lookup returns the value stored under key and whether it was present.
func (c Config) Lookup(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// Path returns the location of the config file under home. The suffix is
// appended verbatim so that drive-style homes keep their form.
func Path(home string) string {
	return home + "/" + Dir + "/" + FileName
}

// ParseLine splits line on its first '=' and trims both halves. ok is false
// for lines without '='.
func ParseLine(line string) (Entry, bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return Entry{}, false
	}

	return Entry{Key: trim(key), Value: trim(value)}, true
}

// Parse reads r line by line and returns the resulting config. Lines may be of
// any length. On a read error the entries parsed so far are returned together
// with the error.
func Parse(r io.Reader) (Config, error) {
	cfg := make(Config)
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if entry, ok := ParseLine(line); ok {
				cfg[entry.Key] = entry.Value
			}
		}

		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		if err != nil {
			return cfg, err
		}
	}
}

// FormatParams builds the connection-parameter string for port. The port is
// used verbatim.
func FormatParams(port string) string {
	return paramsPrefix + port
}

// Params derives the connection-parameter string from cfg. ok is false when cfg
// has no port entry.
func Params(cfg Config) (params string, ok bool) {
	port, ok := cfg.Lookup(KeyPort)
	if !ok {
		return "", false
	}

	return FormatParams(port), true
}

func trim(s string) string {
	return strings.Trim(s, asciiSpace)
}
