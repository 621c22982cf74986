// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"net"
	"testing"
)

func TestStartupLogLineIPv4Wildcard(t *testing.T) {
	addr := IP4(nil, 1234)
	if got, want := addr.startupLogLine(), "starting server port: 1234"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStartupLogLineIPv4Specific(t *testing.T) {
	addr := IP4(net.ParseIP("8.8.8.8"), 1234)
	if got, want := addr.startupLogLine(), "starting server 8.8.8.8:1234"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStartupLogLineUnix(t *testing.T) {
	addr := Unix("/var/fox/xyz")
	if got, want := addr.startupLogLine(), "starting server path: /var/fox/xyz"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStartupLogLineUnknownFamily(t *testing.T) {
	var addr Address
	if got, want := addr.startupLogLine(), "starting server"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
