// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"net"
	"time"
)

// PoolFactory builds a SocketPool bound to a specific listener. The
// default (used when WithPool is not supplied) is the paced Accept-loop
// pool described in pool.go.
type PoolFactory func(net.Listener) SocketPool

// config collects the options spec.md §6 recognizes, assembled by the
// functional Option values below before New constructs a Server.
type config struct {
	address     Address
	timeout     time.Duration
	poolFactory PoolFactory
	logger      Logger
	handler     Handler
}

// Option configures a Server at construction time.
type Option func(*config)

// WithAddress binds the server to addr (spec.md §6 "address").
func WithAddress(addr Address) Option {
	return func(c *config) { c.address = addr }
}

// WithPort is the convenience option from spec.md §6: binds the wildcard
// address on the best available IP family.
func WithPort(port int) Option {
	return func(c *config) { c.address = PortAddress(port) }
}

// WithTimeout sets the per-request handler deadline (spec.md §6, default
// 15s).
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithLogger overrides the default logger (spec.md §6 "logger").
func WithLogger(logger Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithForcedFallbackLogger selects the line-buffered stderr printer
// unconditionally, bypassing the OS-system-logger default (spec.md §6).
func WithForcedFallbackLogger() Option {
	return func(c *config) { c.logger = ForcedFallbackLogger() }
}

// WithHandler installs a catch-all handler as route "*" (spec.md §6
// "handler").
func WithHandler(handler Handler) Option {
	return func(c *config) { c.handler = handler }
}

// WithPool overrides the default SocketPool (spec.md §6 "pool").
func WithPool(factory PoolFactory) Option {
	return func(c *config) { c.poolFactory = factory }
}

const defaultTimeout = 15 * time.Second
