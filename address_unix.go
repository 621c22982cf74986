// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

//go:build !windows

package vixen

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

var sigpipeOnce sync.Once

// suppressSIGPIPE ignores SIGPIPE process-wide, once, matching the
// "suppress SIGPIPE where the host OS delivers it on writes to closed
// sockets" half of spec.md §4.2's alternative (the other half — checking
// every write's error — is also exercised, since Write on a half-closed
// socket still returns EPIPE even with the signal ignored).
func suppressSIGPIPE() {
	sigpipeOnce.Do(func() {
		signal.Ignore(syscall.SIGPIPE)
	})
}

func contextForListen() context.Context {
	return context.Background()
}

func setReuseAddr(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
