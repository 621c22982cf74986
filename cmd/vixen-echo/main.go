// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

// Command vixen-echo is a minimal demonstration of an embedded vixen
// server: a couple of status routes plus a WebSocket echo endpoint,
// configured the twelve-factor way via vixen.OptionsFromEnv.
//
// Example usage:
//
//	VIXEN_PORT=8080 VIXEN_LOG_LEVEL=debug go run ./cmd/vixen-echo
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vixen-http/vixen"
)

func main() {
	opts, err := vixen.OptionsFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vixen-echo: config:", err)
		os.Exit(1)
	}

	srv := vixen.New(opts...)

	srv.AppendRoute("GET /accepted", func(ctx context.Context, req *vixen.Request) (*vixen.Response, error) {
		return vixen.Status(202), nil
	})
	srv.AppendRoute("GET /gone", func(ctx context.Context, req *vixen.Request) (*vixen.Response, error) {
		return vixen.Status(410), nil
	})
	srv.AppendRoute("GET /echo", vixen.UpgradeHandler(vixen.EchoHandler))
	srv.AppendRoute("GET /metrics", srv.MetricsRoute())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = srv.Stop()
	}()

	if err := srv.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "vixen-echo: server:", err)
		os.Exit(1)
	}
}
