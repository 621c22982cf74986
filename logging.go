// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/vixen-http/vixen/internal/logging"
)

// Logger is the sink contract from spec.md §6: {logInfo, logError,
// logCritical}. Each method takes the literal message string spec.md §6
// fixes (e.g. "starting server") plus structured key/value pairs that
// ride along as fields without altering that message text.
type Logger interface {
	LogInfo(msg string, fields map[string]any)
	LogError(msg string, fields map[string]any)
	LogCritical(msg string, fields map[string]any)
}

// zerologLogger adapts a zerolog.Logger to the Logger contract.
type zerologLogger struct {
	logger zerolog.Logger
}

func (z zerologLogger) LogInfo(msg string, fields map[string]any) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z zerologLogger) LogError(msg string, fields map[string]any) {
	z.logger.Error().Fields(fields).Msg(msg)
}

func (z zerologLogger) LogCritical(msg string, fields map[string]any) {
	z.logger.Error().Str("severity", "critical").Fields(fields).Msg(msg)
}

// defaultLogger implements spec.md §6's default-logger rule: the OS
// system logger if available, else a line-buffered stderr printer.
func defaultLogger() Logger {
	if sysLogger, ok := logging.SystemLogger("info"); ok {
		return zerologLogger{logger: sysLogger}
	}
	return zerologLogger{logger: logging.StderrSink()}
}

// ForcedFallbackLogger unconditionally selects the line-buffered stderr
// printer, matching spec.md §6's "forced-fallback option".
func ForcedFallbackLogger() Logger {
	return zerologLogger{logger: logging.StderrSink()}
}

// NewLogger builds a Logger at the given level ("trace".."error") writing
// JSON lines to stderr.
func NewLogger(level string) Logger {
	return zerologLogger{logger: logging.New(logging.Config{Level: level, Format: "json"})}
}

// NewLoggerWriter builds a Logger at the given level writing JSON lines to
// w. Callers embedding vixen in a larger application, with its own
// zerolog sink already configured, typically use this to share that sink
// instead of accepting the package default.
func NewLoggerWriter(level string, w io.Writer) Logger {
	return zerologLogger{logger: logging.New(logging.Config{Level: level, Format: "json", Output: w})}
}
