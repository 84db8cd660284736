// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dbconf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Section is the header line written above the entries. It contains no '=' so
// Parse skips it.
const Section = "[cluster]"

// Encode renders cfg in the db.conf format with keys in sorted order.
func Encode(cfg Config) []byte {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(Section)
	b.WriteByte('\n')
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, cfg[k])
	}

	return []byte(b.String())
}

// WriteFile atomically replaces the config file at path with cfg, creating the
// parent directory when needed.
func WriteFile(path string, cfg Config) error {
	for k := range cfg {
		if k == "" || strings.ContainsAny(k, "=\n") {
			return fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
		if strings.ContainsRune(cfg[k], '\n') {
			return fmt.Errorf("%w: value of %q", ErrInvalidValue, k)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	if err := replaceFile(path, Encode(cfg)); err != nil {
		return fmt.Errorf("error replacing config file: %w", err)
	}

	return nil
}
