// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/thejerf/suture/v4"
	"golang.org/x/time/rate"
)

// AcceptResult is one outcome of a SocketPool's accept stream: either a
// newly accepted connection, or a terminal error (errDisconnected for a
// graceful close, anything else fatal).
type AcceptResult struct {
	Conn net.Conn
	Err  error
}

// SocketPool is the async I/O driver contract from spec.md §2 item 2: a
// long-lived task (Run) that drives I/O readiness and a stream of
// accepted sockets, consumed by the Server Supervisor as one of its two
// concurrent start() children.
//
// Go's runtime netpoller already performs the readiness-to-wake-up
// translation this interface exists to abstract in languages without a
// built-in scheduler integration for async I/O (see DESIGN.md for the
// full reasoning); the default implementation below is correspondingly
// thin — a paced Accept loop — rather than a hand-rolled epoll/kqueue
// driver. The interface still exists so an embedder can substitute a
// different pacing/backoff policy without touching the Server.
type SocketPool interface {
	// Run drives the pool until ctx is cancelled.
	Run(ctx context.Context) error
	// Accepted returns the stream of accepted connections. The accept
	// loop reads from this channel; Run is responsible for populating it.
	Accepted() <-chan AcceptResult
}

// defaultPool is the "polling pool with 100ms poll and immediate loop
// interval" spec.md §6 names as the default. In Go terms there is nothing
// to poll — Accept already blocks until a connection is ready — so this
// pool's only job is pacing retries after a transient Accept error, using
// golang.org/x/time/rate the way a production accept loop backs off a
// resource-exhaustion error instead of busy-looping.
type defaultPool struct {
	listener net.Listener
	limiter  *rate.Limiter
	accepted chan AcceptResult
}

// newDefaultPool builds the default SocketPool for listener.
func newDefaultPool(listener net.Listener) *defaultPool {
	return &defaultPool{
		listener: listener,
		// 10 retries/sec steady-state, bursting to 1 — mirrors the classic
		// net/http.Server tempDelay backoff without a hand-rolled timer.
		limiter:  rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		accepted: make(chan AcceptResult),
	}
}

// Accepted implements SocketPool.
func (p *defaultPool) Accepted() <-chan AcceptResult {
	return p.accepted
}

// Run implements SocketPool. It is not itself the accept loop (spec.md
// keeps those as separate children of start()); it republishes this
// listener's Accept results and paces the next Accept after a failed one,
// so acceptLoopService can consume a steady stream without implementing
// backoff itself.
func (p *defaultPool) Run(ctx context.Context) error {
	for {
		conn, err := p.listener.Accept()
		classified := classifyAcceptError(err)
		select {
		case p.accepted <- AcceptResult{Conn: conn, Err: classified}:
		case <-ctx.Done():
			if conn != nil {
				_ = conn.Close()
			}
			return terminate(ctx.Err())
		}
		if errors.Is(classified, errDisconnected) {
			// The listening socket closed; start() ends once either child
			// finishes (spec.md §4.1), so this pool's work is done too.
			return terminate(nil)
		}
		if classified != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return terminate(ctx.Err())
			}
		}
	}
}

// terminationError wraps a child service's terminal cause (which may be
// nil, for a graceful drain) so suture.Supervisor recognizes it — via Is —
// as a request to stop the whole tree rather than restart this service,
// matching spec.md §4.1's "the call returns when either child finishes;
// the other is cancelled." Start unwraps it back to the original cause.
type terminationError struct {
	cause error
}

func (e *terminationError) Error() string {
	if e.cause == nil {
		return "vixen: supervised child finished gracefully"
	}
	return fmt.Sprintf("vixen: supervised child finished: %v", e.cause)
}

func (e *terminationError) Unwrap() error { return e.cause }

func (e *terminationError) Is(target error) bool {
	return target == suture.ErrTerminateSupervisorTree
}

func terminate(cause error) error {
	return &terminationError{cause: cause}
}

// classifyAcceptError maps net.Listener.Accept's "use of closed network
// connection" error to errDisconnected, the graceful-shutdown signal
// spec.md §4.5 calls out, distinguishing it from any other Accept error.
func classifyAcceptError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, net.ErrClosed) {
		return errDisconnected
	}
	return err
}
