// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"
	"sync"
)

// readinessGate is the ReadinessGate from spec.md §3/§9: a one-way latch
// that, once opened, stays open for the server's lifetime of that Start
// call; waiters registered before it opens are released when it does,
// and can remove themselves on cancellation to avoid leaking.
type readinessGate struct {
	mu      sync.Mutex
	isOpen  bool
	waiters map[chan struct{}]struct{}
}

func newReadinessGate() *readinessGate {
	return &readinessGate{waiters: make(map[chan struct{}]struct{})}
}

// open transitions the gate false->true and releases every pending
// waiter.
func (g *readinessGate) open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.isOpen = true
	for ch := range g.waiters {
		close(ch)
	}
	g.waiters = make(map[chan struct{}]struct{})
}

// close resets the gate for the next Start call, matching spec.md §3's
// true->false transition on stop(). It also releases any waiters still
// parked from a Start that failed before reaching open() — otherwise a
// WaitUntilListening call with no deadline would block forever.
func (g *readinessGate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.isOpen = false
	for ch := range g.waiters {
		close(ch)
	}
	g.waiters = make(map[chan struct{}]struct{})
}

// wait blocks until the gate opens, returning immediately if it already
// has. It honors ctx cancellation/deadline, removing its own waiter entry
// so a cancelled wait never leaks (spec.md §4.1, §5). A waiter released by
// close() rather than open() reports ErrWaitCancelled, since the gate
// never actually became ready.
func (g *readinessGate) wait(ctx context.Context) error {
	g.mu.Lock()
	if g.isOpen {
		g.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	g.waiters[ch] = struct{}{}
	g.mu.Unlock()

	select {
	case <-ch:
		g.mu.Lock()
		isOpen := g.isOpen
		g.mu.Unlock()
		if isOpen {
			return nil
		}
		return ErrWaitCancelled
	case <-ctx.Done():
		g.mu.Lock()
		delete(g.waiters, ch)
		g.mu.Unlock()
		if ctx.Err() == context.DeadlineExceeded {
			return ErrWaitTimeout
		}
		return ErrWaitCancelled
	}
}
