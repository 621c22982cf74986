// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

// Package logging provides the zerolog-backed sinks behind vixen's Logger
// contract (spec.md §6: logInfo/logError/logCritical), plus the
// correlation-ID helpers attached to every connection's log lines.
//
// Two sinks are built in: the OS system logger (syslog, where available)
// and a line-buffered stderr printer, matching spec.md §6's default/
// fallback rule. Callers that want JSON or console formatting for their
// own sink can call New directly.
package logging

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config controls the zerolog backend used by a sink.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string

	// Format is the output encoding: json or console.
	// Default: json
	Format string

	// Output is the writer log lines are written to.
	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

// New builds a zerolog.Logger from cfg. Unset fields fall back to
// DefaultConfig's values.
func New(cfg Config) zerolog.Logger {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var out io.Writer = cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05", NoColor: true}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// lineBufferedWriter flushes after every Write, giving a "line-buffered
// stderr printer" in the sense spec.md §6 describes (each log call is
// immediately visible, never held in a buffer). The mutex keeps lines
// from concurrent writers from interleaving.
type lineBufferedWriter struct {
	mu  sync.Mutex
	buf *bufio.Writer
}

func newLineBufferedWriter(w io.Writer) *lineBufferedWriter {
	return &lineBufferedWriter{buf: bufio.NewWriter(w)}
}

func (l *lineBufferedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, err := l.buf.Write(p)
	if err != nil {
		return n, err
	}
	return n, l.buf.Flush()
}

// StderrSink returns the line-buffered stderr printer spec.md §6 describes
// as the fallback logger when no OS system logger is available (or when
// the caller forces the fallback unconditionally).
func StderrSink() zerolog.Logger {
	return New(Config{Level: "info", Format: "console", Output: newLineBufferedWriter(os.Stderr)})
}

// GenerateCorrelationID returns a short, readable per-connection
// identifier, matching the teacher's convention of truncating a UUID to 8
// characters for log correlation rather than carrying the full value.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}
