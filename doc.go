// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

// Package vixen is an embeddable HTTP/1.1 server with route dispatch,
// keep-alive, per-request timeouts, and in-place upgrade to WebSocket.
//
// It is meant to be linked into an application that wants to serve a small
// number of HTTP endpoints or a local API without pulling in net/http's
// server machinery. The wire-level parsing of start-lines and headers is
// ordinary plumbing around four subsystems that receive the bulk of the
// design attention: the server supervisor, the connection state machine,
// the route matcher, and the WebSocket frame codec. The package does not
// provide TLS or static-file handling.
//
// A minimal server:
//
//	srv := vixen.New(vixen.WithPort(8080))
//	srv.AppendRoute("GET /health", func(ctx context.Context, r *vixen.Request) (*vixen.Response, error) {
//		return vixen.Status(200), nil
//	})
//	if err := srv.Start(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package vixen
