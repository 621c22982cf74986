// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/vixen-http/vixen/internal/supervisor"
)

// Server is the Server Supervisor from spec.md §4.1: a single-threaded
// logical entity whose state (isListening, the listening socket, the
// router, the readiness waiters) is mutated only from appendRoute/Start/
// Stop, never concurrently with the accept path. Concurrent work —
// accepting connections and running the socket pool — happens in two
// child goroutines supervised by internal/supervisor.
type Server struct {
	cfg     config
	router  Router
	timeout time.Duration
	pool    SocketPool
	metrics *metricsRegistry

	mu        sync.Mutex
	listening bool
	listener  net.Listener
	gate      *readinessGate
	tree      *supervisor.Tree
	stopOnce  sync.Once
}

// New constructs a Server from the given options. It does not bind a
// socket; call Start for that.
func New(opts ...Option) *Server {
	cfg := config{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.address.family == FamilyUnknown {
		cfg.address = PortAddress(0)
	}
	if cfg.logger == nil {
		cfg.logger = defaultLogger()
	}

	s := &Server{
		cfg:     cfg,
		timeout: cfg.timeout,
		metrics: newMetricsRegistry(),
		gate:    newReadinessGate(),
	}
	if cfg.handler != nil {
		s.router.appendRoute("*", cfg.handler)
	}
	return s
}

func (s *Server) logger() Logger {
	return s.cfg.logger
}

// AppendRoute appends pattern/handler to the router (spec.md §4.1). Safe
// to call before Start and while the server is serving.
func (s *Server) AppendRoute(pattern string, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.appendRoute(pattern, handler)
}

// Start binds the listening socket and runs the server's two supervised
// children — the socket pool and the accept loop — until ctx is
// cancelled, one of them fails, or Stop is called. It fails immediately
// if the server is already listening (spec.md §4.1).
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.listening {
		s.mu.Unlock()
		return ErrAlreadyListening
	}

	listener, err := s.cfg.address.listen()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.listener = listener
	s.listening = true
	s.mu.Unlock()

	s.gate.open()
	s.logger().LogInfo(s.cfg.address.startupLogLine(), nil)

	if s.cfg.poolFactory != nil {
		s.pool = s.cfg.poolFactory(listener)
	} else {
		s.pool = newDefaultPool(listener)
	}

	s.tree = supervisor.New("vixen-server", noRestartConfig(), nil)
	s.tree.Add(supervisor.Wrap("socket-pool", runnableFunc(s.pool.Run)))
	s.tree.Add(supervisor.Wrap("accept-loop", newAcceptLoopService(s.pool, s)))

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err = s.tree.Serve(serveCtx)

	s.mu.Lock()
	s.listening = false
	s.mu.Unlock()
	s.gate.close()

	if errors.Is(err, suture.ErrTerminateSupervisorTree) {
		return errors.Unwrap(err)
	}
	return err
}

// Stop is the graceful shutdown path (spec.md §4.1/§4.5): idempotent; if
// listening, it closes the listening socket, which the accept loop
// observes as errDisconnected and treats as the drain trigger.
func (s *Server) Stop() error {
	s.mu.Lock()
	listener := s.listener
	s.listener = nil
	s.mu.Unlock()
	if listener == nil {
		return nil
	}
	return listener.Close()
}

// WaitUntilListening blocks until isListening becomes true, returning
// immediately if it already is. It honors ctx cancellation and, per
// spec.md §4.1, an optional timeout supplied as part of ctx.
func (s *Server) WaitUntilListening(ctx context.Context) error {
	return s.gate.wait(ctx)
}

// runnableFunc adapts a plain func(context.Context) error to
// supervisor.Runnable.
type runnableFunc func(ctx context.Context) error

func (f runnableFunc) Run(ctx context.Context) error { return f(ctx) }

// noRestartConfig is the suture policy for the pool and accept-loop
// children: a failure threshold of 1 and a one-hour backoff. Start returns
// when either child finishes because both built-in children end by
// returning terminate(...), which suture treats as a request to stop the
// whole tree (see terminationError in pool.go); this policy by itself
// does not stop suture from restarting a child that fails in another way.
func noRestartConfig() supervisor.Config {
	return supervisor.Config{
		FailureThreshold: 1,
		FailureDecay:     1,
		FailureBackoff:   time.Hour,
		ShutdownTimeout:  10 * time.Second,
	}
}
