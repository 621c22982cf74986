// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

type fakePool struct {
	results chan AcceptResult
}

func newFakePool() *fakePool { return &fakePool{results: make(chan AcceptResult, 4)} }

func (p *fakePool) Run(ctx context.Context) error          { <-ctx.Done(); return terminate(ctx.Err()) }
func (p *fakePool) Accepted() <-chan AcceptResult          { return p.results }

func TestAcceptLoopDrainsInFlightConnectionsOnGracefulDisconnect(t *testing.T) {
	srv := New(WithForcedFallbackLogger())
	pool := newFakePool()
	loop := newAcceptLoopService(pool, srv)

	client, serverSide := net.Pipe()
	defer client.Close()
	pool.results <- AcceptResult{Conn: serverSide}
	pool.results <- AcceptResult{Err: errDisconnected}

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	// Give the accept loop time to spawn the connection goroutine and
	// observe errDisconnected before the client sends anything; Run should
	// block on wg.Wait(), not return yet.
	select {
	case <-done:
		t.Fatal("Run returned before its in-flight connection finished")
	case <-time.After(100 * time.Millisecond):
	}

	if _, err := client.Write([]byte("GET / HTTP/1.1\r\nHost: x\r\nConnection: close\r\n\r\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf := make([]byte, 512)
	if _, err := client.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}

	select {
	case err := <-done:
		if cause := errors.Unwrap(err); cause != nil {
			t.Fatalf("expected a graceful termination, got cause %v", cause)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after its connection drained")
	}
}

func TestAcceptLoopCancelsOnFatalError(t *testing.T) {
	srv := New(WithForcedFallbackLogger())
	pool := newFakePool()
	loop := newAcceptLoopService(pool, srv)

	fatal := errors.New("listener exploded")
	pool.results <- AcceptResult{Err: fatal}

	err := loop.Run(context.Background())
	if cause := errors.Unwrap(err); cause != fatal {
		t.Fatalf("got cause %v, want %v", cause, fatal)
	}
}

func TestAcceptLoopTerminatesOnContextCancel(t *testing.T) {
	srv := New(WithForcedFallbackLogger())
	pool := newFakePool()
	loop := newAcceptLoopService(pool, srv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		if cause := errors.Unwrap(err); !errors.Is(cause, context.Canceled) {
			t.Fatalf("got cause %v, want context.Canceled", cause)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not terminate after context cancellation")
	}
}
