// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

// Package config loads vixen's ambient server settings (bind address,
// timeouts, logging) using a layered koanf pipeline: built-in defaults,
// then an optional YAML file, then environment variables, each layer
// overriding the one before it. This mirrors the teacher's LoadWithKoanf
// pattern, scoped down to the handful of settings a vixen.Server itself
// needs rather than a whole application's configuration surface.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Values holds the settings a vixen.Server reads at startup. Field names
// use koanf tags so they round-trip through YAML and environment layers
// without a separate mapping table.
type Values struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	UnixSocketPath string        `koanf:"unix_socket_path"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	LogLevel       string        `koanf:"log_level"`
	LogFormat      string        `koanf:"log_format"`
	MetricsEnabled bool          `koanf:"metrics_enabled"`
}

// DefaultConfigPaths lists the paths searched for a YAML config file, in
// priority order; the first one found is used.
var DefaultConfigPaths = []string{
	"vixen.yaml",
	"vixen.yml",
	"/etc/vixen/vixen.yaml",
}

// ConfigPathEnvVar overrides the searched paths with an explicit file.
const ConfigPathEnvVar = "VIXEN_CONFIG_PATH"

func defaults() *Values {
	return &Values{
		Host:           "0.0.0.0",
		Port:           8080,
		UnixSocketPath: "",
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		LogLevel:       "info",
		LogFormat:      "json",
		MetricsEnabled: true,
	}
}

// envMappings maps VIXEN_*-prefixed environment variables to koanf paths.
// Unmapped env vars are ignored, so unrelated process environment never
// leaks into the server's settings.
var envMappings = map[string]string{
	"vixen_host":             "host",
	"vixen_port":             "port",
	"vixen_unix_socket_path": "unix_socket_path",
	"vixen_read_timeout":     "read_timeout",
	"vixen_write_timeout":    "write_timeout",
	"vixen_log_level":        "log_level",
	"vixen_log_format":       "log_format",
	"vixen_metrics_enabled":  "metrics_enabled",
}

func envTransform(key string) string {
	key = strings.ToLower(key)
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}

// Load builds a Values by layering defaults, an optional YAML file found
// via DefaultConfigPaths/ConfigPathEnvVar, and environment variables, in
// that order of increasing precedence.
func Load() (*Values, error) {
	return load(findConfigFile())
}

// LoadFile is like Load but reads its YAML layer from an explicit path
// instead of searching DefaultConfigPaths.
func LoadFile(path string) (*Values, error) {
	return load(path)
}

func load(path string) (*Values, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("VIXEN_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	values := &Values{}
	if err := k.Unmarshal("", values); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := values.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return values, nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks constraints Load cannot express through koanf alone.
func (v *Values) Validate() error {
	if v.UnixSocketPath == "" && (v.Port < 0 || v.Port > 65535) {
		return fmt.Errorf("config: port %d out of range", v.Port)
	}
	switch strings.ToLower(v.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", v.LogFormat)
	}
	return nil
}
