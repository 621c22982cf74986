// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/vixen-http/vixen/internal/logging"
)

// connState is the Connection state machine from spec.md §4.4.
type connState int

const (
	stateReadingRequest connState = iota
	stateDispatching
	stateWriting
	stateUpgraded
	stateDone
)

// Connection is a stateful wrapper around one accepted socket (spec.md
// §3). Exactly one goroutine ever reads from or writes to conn — the one
// running serve — satisfying the "never shared between tasks" invariant.
type Connection struct {
	id            string
	correlationID string
	conn          net.Conn
	reader        *bufio.Reader
	server        *Server
}

func newConnection(conn net.Conn, server *Server) *Connection {
	return &Connection{
		id:            peerID(conn),
		correlationID: logging.GenerateCorrelationID(),
		conn:          conn,
		reader:        bufio.NewReader(conn),
		server:        server,
	}
}

// peerID is the "<id>" spec.md §6 says is the peer hostname.
func peerID(conn net.Conn) string {
	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		return conn.RemoteAddr().String()
	}
	return host
}

func (c *Connection) fields(extra map[string]any) map[string]any {
	fields := map[string]any{"connection_id": c.id, "correlation_id": c.correlationID}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

// serve runs the connection's request/response loop until it reaches
// Done, per spec.md §4.4's state diagram, then closes the socket exactly
// once. A watcher goroutine closes the socket as soon as ctx is
// cancelled, so a read blocked waiting for the next keep-alive request
// (spec.md §5/§9's forced-cancel intent, as distinct from the
// drain-to-completion path stop() takes) is interrupted promptly instead
// of waiting for the peer.
func (c *Connection) serve(ctx context.Context) {
	c.server.logger().LogInfo(c.id+" open connection", c.fields(nil))

	watcherDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = c.conn.Close()
		case <-watcherDone:
		}
	}()

	defer func() {
		close(watcherDone)
		_ = c.conn.Close()
		c.server.logger().LogInfo(c.id+" close connection", c.fields(nil))
	}()

	state := stateReadingRequest
	var req *Request
	var res *Response

	for state != stateDone {
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch state {
		case stateReadingRequest:
			var err error
			req, err = readRequest(c.reader)
			switch {
			case err == nil:
				state = stateDispatching
			case errors.Is(err, io.EOF):
				state = stateDone
			case ctx.Err() != nil:
				// The watcher closed conn out from under us; this is a
				// forced cancellation, not an I/O failure worth logging.
				state = stateDone
			default:
				c.server.logger().LogError(c.id+" error: "+err.Error(), c.fields(nil))
				state = stateDone
			}

		case stateDispatching:
			c.server.logger().LogInfo(c.id+" request: "+req.Method+" "+req.Path, c.fields(nil))
			res = c.dispatch(ctx, req)
			if req.ShouldKeepAlive {
				if conn := req.Header.Get("Connection"); conn != "" {
					res.Header.Set("Connection", conn)
				}
			}
			state = stateWriting

		case stateWriting:
			if err := writeResponse(c.conn, res); err != nil {
				c.server.logger().LogError(c.id+" error: "+err.Error(), c.fields(nil))
				state = stateDone
				continue
			}
			switch {
			case res.Upgrade != nil:
				c.server.metrics.m.WebSocketUpgrades.Inc()
				state = stateUpgraded
			case req.ShouldKeepAlive:
				state = stateReadingRequest
			default:
				state = stateDone
			}

		case stateUpgraded:
			if err := res.Upgrade(); err != nil {
				c.server.logger().LogError(c.id+" error: "+err.Error(), c.fields(nil))
			}
			state = stateDone
		}
	}
}

// dispatch routes req to its handler with the server's configured
// deadline, converting "no route" to 404, handler errors to 500, and
// handler timeout to 500 within the deadline (spec.md §4.4, §7).
func (c *Connection) dispatch(ctx context.Context, req *Request) *Response {
	c.server.mu.Lock()
	handler, ok := c.server.router.match(req.Method, req.Path)
	c.server.mu.Unlock()
	if !ok {
		c.server.metrics.m.RequestsTotal.WithLabelValues("4xx").Inc()
		return Status(404)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.server.timeout)
	defer cancel()
	reqCtx = context.WithValue(reqCtx, connContextKey, c.conn)

	start := time.Now()
	type result struct {
		res *Response
		err error
	}
	done := make(chan result, 1)
	go func() {
		res, err := handler(reqCtx, req)
		done <- result{res: res, err: err}
	}()

	select {
	case r := <-done:
		c.server.metrics.m.RequestDuration.Observe(time.Since(start).Seconds())
		if r.err != nil {
			c.server.metrics.m.RequestsTotal.WithLabelValues("5xx").Inc()
			return Status(500)
		}
		c.server.metrics.m.RequestsTotal.WithLabelValues(statusClass(r.res.Status)).Inc()
		return r.res
	case <-reqCtx.Done():
		c.server.metrics.m.RequestsTotal.WithLabelValues("5xx").Inc()
		return Status(500)
	}
}

func statusClass(status int) string {
	switch status / 100 {
	case 2:
		return "2xx"
	case 3:
		return "3xx"
	case 4:
		return "4xx"
	default:
		return "5xx"
	}
}
