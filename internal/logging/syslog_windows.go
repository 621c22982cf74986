// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

//go:build windows

package logging

import "github.com/rs/zerolog"

// SystemLogger has no OS syslog equivalent wired up on Windows; callers
// always fall back to StderrSink, matching spec.md §6's fallback rule.
func SystemLogger(level string) (zerolog.Logger, bool) {
	return zerolog.Logger{}, false
}
