// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import "errors"

var (
	// errDisconnected signals that the listening socket was closed by
	// stop(), not by an unexpected I/O failure. The accept loop treats it
	// as the graceful-shutdown trigger and drains in-flight connections
	// instead of cancelling them.
	errDisconnected = errors.New("vixen: listener disconnected")

	// ErrAlreadyListening is returned by Start when the server is already
	// serving.
	ErrAlreadyListening = errors.New("vixen: server is already listening")

	// ErrWaitCancelled is returned by WaitUntilListening when its context
	// is cancelled before the server becomes ready.
	ErrWaitCancelled = errors.New("vixen: wait for listening cancelled")

	// ErrWaitTimeout is returned by WaitUntilListening when the supplied
	// timeout elapses before the server becomes ready.
	ErrWaitTimeout = errors.New("vixen: wait for listening timed out")
)
