// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

// Package metrics collects Prometheus metrics for a vixen server and
// exposes them as text, without depending on net/http — the rest of this
// module hand-rolls its own HTTP wire handling, so exposition goes through
// prometheus/common/expfmt directly rather than promhttp.Handler.
package metrics

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the collectors a vixen Server registers and updates over
// its lifetime. The zero value is not usable; use New.
type Metrics struct {
	registry *prometheus.Registry

	ConnectionsAccepted prometheus.Counter
	ConnectionsActive   prometheus.Gauge
	RequestsTotal       *prometheus.CounterVec
	WebSocketUpgrades   prometheus.Counter
	RequestDuration     prometheus.Histogram
}

// New builds a Metrics instance with its own private registry, so that
// multiple independent vixen servers in the same process never collide on
// collector names.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ConnectionsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vixen_connections_accepted_total",
			Help: "Total TCP/unix connections accepted by the server.",
		}),
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vixen_connections_active",
			Help: "Connections currently open and being served.",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vixen_requests_total",
			Help: "Total HTTP requests dispatched, labeled by response status class.",
		}, []string{"status"}),
		WebSocketUpgrades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vixen_websocket_upgrades_total",
			Help: "Total successful WebSocket upgrade handshakes.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vixen_request_duration_seconds",
			Help:    "Time the matched route's handler took to return.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.ConnectionsAccepted,
		m.ConnectionsActive,
		m.RequestsTotal,
		m.WebSocketUpgrades,
		m.RequestDuration,
	)
	return m
}

// Gather renders the current metric values in Prometheus's text exposition
// format, suitable for serving as the body of the built-in /metrics route.
func (m *Metrics) Gather() ([]byte, string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return nil, "", err
		}
	}
	return buf.Bytes(), string(expfmt.NewFormat(expfmt.TypeTextPlain)), nil
}
