// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package metrics

import "testing"
import "strings"

func TestGatherIncludesRegisteredMetrics(t *testing.T) {
	m := New()
	m.ConnectionsAccepted.Inc()
	m.ConnectionsActive.Set(3)
	m.RequestsTotal.WithLabelValues("2xx").Inc()
	m.WebSocketUpgrades.Inc()
	m.RequestDuration.Observe(0.042)

	body, contentType, err := m.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if contentType == "" {
		t.Fatal("expected non-empty content type")
	}

	text := string(body)
	for _, want := range []string{
		"vixen_connections_accepted_total",
		"vixen_connections_active",
		`vixen_requests_total{status="2xx"}`,
		"vixen_websocket_upgrades_total",
		"vixen_request_duration_seconds",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected exposition text to contain %q, got:\n%s", want, text)
		}
	}
}

func TestIndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ConnectionsAccepted.Inc()

	bodyA, _, err := a.Gather()
	if err != nil {
		t.Fatalf("Gather a: %v", err)
	}
	bodyB, _, err := b.Gather()
	if err != nil {
		t.Fatalf("Gather b: %v", err)
	}
	if strings.Contains(string(bodyB), "vixen_connections_accepted_total 1") {
		t.Fatal("expected second registry to be unaffected by first")
	}
	if !strings.Contains(string(bodyA), "vixen_connections_accepted_total 1") {
		t.Fatal("expected first registry to record increment")
	}
}
