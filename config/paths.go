// Copyright © 2025 Scrolltile contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Default locations for the config file and the control socket.

package config

import (
	"os"
	"path/filepath"
)

const (
	configName = "scrolltile.yaml"
	socketName = "scrolltile.sock"
)

// DefaultPath returns the default config file location under the user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scrolltile", configName), nil
}

// ResolvedSocketPath returns the control socket path: the configured
// override, or a per-user location under the runtime/temp directory.
func (c *Config) ResolvedSocketPath() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	return filepath.Join(os.TempDir(), socketName)
}
