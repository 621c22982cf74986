// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

//go:build windows

package vixen

import (
	"context"
	"syscall"
)

// suppressSIGPIPE is a no-op on Windows: the host does not deliver SIGPIPE
// on writes to a closed socket, so callers rely solely on checking write
// errors (the other half of spec.md §4.2's "either is valid" note).
func suppressSIGPIPE() {}

func contextForListen() context.Context {
	return context.Background()
}

func setReuseAddr(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = syscall.SetsockoptInt(syscall.Handle(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
