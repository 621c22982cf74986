// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"context"

	"github.com/vixen-http/vixen/internal/metrics"
)

// metricsRegistry is the Prometheus collector set behind a Server's
// ambient observability, one private registry per Server; not part of spec.md, which is silent on
// metrics, but carried regardless per the ambient-stack policy for this
// module.
type metricsRegistry struct {
	m *metrics.Metrics
}

func newMetricsRegistry() *metricsRegistry {
	return &metricsRegistry{m: metrics.New()}
}

// MetricsRoute returns a Handler serving the registry's current values in
// Prometheus text exposition format. Install it with
// AppendRoute("GET /metrics", srv.MetricsRoute()).
func (s *Server) MetricsRoute() Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		body, contentType, err := s.metrics.m.Gather()
		if err != nil {
			return nil, err
		}
		res := Status(200)
		res.Header.Set("Content-Type", contentType)
		res.Body = body
		return res, nil
	}
}
