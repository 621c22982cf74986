// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

// Package supervisor wraps thejerf/suture into the small task-group
// primitive a vixen.Server needs: run a fixed set of concurrent services
// (the socket pool and the accept loop) under one restart policy, and
// stop them all together when the server shuts down.
package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Config controls the restart/backoff policy of a Tree.
type Config struct {
	// FailureThreshold is the number of failures before entering backoff.
	// Default: 5
	FailureThreshold float64

	// FailureDecay is the rate at which failures decay, in seconds.
	// Default: 30
	FailureDecay float64

	// FailureBackoff is how long to wait once the threshold is exceeded.
	// Default: 15s
	FailureBackoff time.Duration

	// ShutdownTimeout bounds how long Stop waits for services to exit.
	// Default: 10s
	ShutdownTimeout time.Duration
}

// DefaultConfig returns suture's own built-in defaults.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Tree is a single-layer suture supervisor: every service added runs as a
// sibling under one root, and a failure in one does not affect the others'
// continued operation (suture restarts the failed one independently).
type Tree struct {
	root *suture.Supervisor
}

// New builds a Tree. If logger is non-nil, suture's internal events
// (service start/stop/panic) are routed through it via sutureslog.
func New(name string, cfg Config, logger *slog.Logger) *Tree {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5.0
	}
	if cfg.FailureDecay == 0 {
		cfg.FailureDecay = 30.0
	}
	if cfg.FailureBackoff == 0 {
		cfg.FailureBackoff = 15 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	spec := suture.Spec{
		FailureThreshold: cfg.FailureThreshold,
		FailureDecay:     cfg.FailureDecay,
		FailureBackoff:   cfg.FailureBackoff,
		Timeout:          cfg.ShutdownTimeout,
	}
	if logger != nil {
		spec.EventHook = (&sutureslog.Handler{Logger: logger}).MustHook()
	}

	return &Tree{root: suture.New(name, spec)}
}

// Add registers a service to run under the tree.
func (t *Tree) Add(svc suture.Service) suture.ServiceToken {
	return t.root.Add(svc)
}

// Remove stops and removes a previously added service.
func (t *Tree) Remove(token suture.ServiceToken) error {
	return t.root.Remove(token)
}

// Serve runs the tree and blocks until ctx is canceled or an unrecoverable
// failure propagates up.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground starts the tree in a goroutine and returns a channel
// that receives its terminal error.
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport reports services that did not exit within the
// tree's shutdown timeout, for diagnosing a stuck Stop.
func (t *Tree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
