// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"
	"errors"
	"sync"
)

// acceptLoopService is the accept loop from spec.md §4.5. It consumes the
// pool's accepted-socket stream and spawns one connection goroutine per
// accepted socket into a tracked group. On errDisconnected (the listening
// socket was closed by stop()) it stops accepting but waits for in-flight
// connections to finish — the graceful-shutdown drain contract. Any other
// error cancels all connection goroutines and propagates.
type acceptLoopService struct {
	pool   SocketPool
	server *Server
}

func newAcceptLoopService(pool SocketPool, server *Server) *acceptLoopService {
	return &acceptLoopService{pool: pool, server: server}
}

// Run implements supervisor.Runnable.
func (a *acceptLoopService) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	connCtx, cancelConns := context.WithCancel(ctx)
	defer cancelConns()

	for {
		select {
		case <-ctx.Done():
			cancelConns()
			wg.Wait()
			return terminate(ctx.Err())

		case result := <-a.pool.Accepted():
			if result.Err != nil {
				if errors.Is(result.Err, errDisconnected) {
					// Graceful shutdown: stop accepting, but let in-flight
					// connections finish their current request/response
					// cycle instead of cancelling them (spec.md §9's
					// drain-to-completion choice).
					wg.Wait()
					return terminate(nil)
				}
				cancelConns()
				wg.Wait()
				return terminate(result.Err)
			}

			conn := newConnection(result.Conn, a.server)
			a.server.metrics.m.ConnectionsAccepted.Inc()
			a.server.metrics.m.ConnectionsActive.Inc()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer a.server.metrics.m.ConnectionsActive.Dec()
				conn.serve(connCtx)
			}()
		}
	}
}
