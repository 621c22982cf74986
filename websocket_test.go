// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// TestEchoRouteWireCompatibility dials the hand-rolled frame codec with a
// real third-party WebSocket client, confirming the handshake and frame
// format are RFC 6455 compliant rather than merely self-consistent.
func TestEchoRouteWireCompatibility(t *testing.T) {
	srv := New(WithAddress(IP4(net.ParseIP("127.0.0.1"), 0)), WithForcedFallbackLogger())
	srv.AppendRoute("GET /echo", UpgradeHandler(EchoHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	if err := srv.WaitUntilListening(context.Background()); err != nil {
		t.Fatalf("WaitUntilListening: %v", err)
	}
	defer func() {
		_ = srv.Stop()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("server did not stop in time")
		}
	}()

	url := "ws://" + srv.listener.Addr().String() + "/echo"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("FlyingFox")); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	msgType, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if msgType != websocket.TextMessage || string(payload) != "FlyingFox" {
		t.Fatalf("got (%d, %q), want (%d, %q)", msgType, payload, websocket.TextMessage, "FlyingFox")
	}
}

func TestComputeAcceptKnownVector(t *testing.T) {
	// The client key is the base64 encoding of "ABCDEFGHIJKLMNOP".
	got := computeAccept("QUJDREVGR0hJSktMTU5PUA==")
	want := "9twnCz4Oi2Q3EuDqLAETCuip07c="
	if got != want {
		t.Fatalf("computeAccept: got %q, want %q", got, want)
	}
}

func TestHeaderContainsToken(t *testing.T) {
	if !headerContainsToken("keep-alive, Upgrade", "upgrade") {
		t.Fatal("expected case-insensitive token match among multiple values")
	}
	if headerContainsToken("keep-alive", "upgrade") {
		t.Fatal("expected no match when token absent")
	}
}
