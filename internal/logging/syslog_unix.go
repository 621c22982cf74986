// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

//go:build !windows

package logging

import (
	"log/syslog"

	"github.com/rs/zerolog"
)

// SystemLogger attempts to dial the local syslog daemon and returns a
// zerolog.Logger backed by it, per spec.md §6 ("default is the OS system
// logger if available"). The bool result is false when no syslog daemon
// is reachable, in which case the caller should fall back to StderrSink.
func SystemLogger(level string) (zerolog.Logger, bool) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, "vixen")
	if err != nil {
		return zerolog.Logger{}, false
	}
	return New(Config{Level: level, Format: "json", Output: w}), true
}
