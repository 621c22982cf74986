// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	values, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if values.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", values.Port)
	}
	if values.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", values.LogLevel)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("VIXEN_PORT", "9090")
	t.Setenv("VIXEN_LOG_LEVEL", "debug")

	values, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if values.Port != 9090 {
		t.Errorf("expected env override port 9090, got %d", values.Port)
	}
	if values.LogLevel != "debug" {
		t.Errorf("expected env override log level debug, got %q", values.LogLevel)
	}
}

func TestLoadFileOverridesDefaultsAndIsOverriddenByEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vixen.yaml")
	if err := os.WriteFile(path, []byte("port: 7000\nlog_level: warn\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("VIXEN_LOG_LEVEL", "error")

	values, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if values.Port != 7000 {
		t.Errorf("expected file-provided port 7000, got %d", values.Port)
	}
	if values.LogLevel != "error" {
		t.Errorf("expected env to win over file, got %q", values.LogLevel)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	v := defaults()
	v.Port = 70000
	if err := v.Validate(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	v := defaults()
	v.LogFormat = "xml"
	if err := v.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestValidateAllowsUnixSocketWithoutPort(t *testing.T) {
	v := defaults()
	v.UnixSocketPath = "/tmp/vixen.sock"
	v.Port = -1
	if err := v.Validate(); err != nil {
		t.Fatalf("expected unix socket config to be valid, got %v", err)
	}
}
