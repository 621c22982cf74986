// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestReadRequestParsesLineHeadersAndBody(t *testing.T) {
	raw := "POST /widgets?color=red HTTP/1.1\r\nHost: example\r\nContent-Length: 5\r\n\r\nhello"
	req, err := readRequest(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	if req.Method != "POST" || req.Path != "/widgets" || req.Query != "color=red" {
		t.Fatalf("got method=%q path=%q query=%q", req.Method, req.Path, req.Query)
	}
	if req.Proto != "HTTP/1.1" {
		t.Fatalf("got proto %q", req.Proto)
	}
	if got := req.Header.Get("Host"); got != "example" {
		t.Fatalf("got Host %q", got)
	}
	if string(req.Body) != "hello" {
		t.Fatalf("got body %q", req.Body)
	}
}

func TestReadRequestRejectsUnsupportedProto(t *testing.T) {
	raw := "GET / HTTP/2.0\r\n\r\n"
	if _, err := readRequest(bufio.NewReader(strings.NewReader(raw))); err == nil {
		t.Fatal("expected an error for an unsupported protocol")
	}
}

func TestReadRequestDoesNotConsumeBeyondOneRequest(t *testing.T) {
	raw := "GET /a HTTP/1.1\r\nHost: x\r\n\r\nGET /b HTTP/1.1\r\nHost: x\r\n\r\n"
	r := bufio.NewReader(strings.NewReader(raw))

	first, err := readRequest(r)
	if err != nil {
		t.Fatalf("first readRequest: %v", err)
	}
	if first.Path != "/a" {
		t.Fatalf("got %q, want /a", first.Path)
	}

	second, err := readRequest(r)
	if err != nil {
		t.Fatalf("second readRequest: %v", err)
	}
	if second.Path != "/b" {
		t.Fatalf("got %q, want /b", second.Path)
	}
}

// Invariant 4: keep-alive defaults by protocol version and is overridden
// by an explicit Connection header.
func TestShouldKeepAliveComputation(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"1.1 default keeps alive", "GET / HTTP/1.1\r\nHost: x\r\n\r\n", true},
		{"1.1 explicit close", "GET / HTTP/1.1\r\nHost: x\r\nConnection: close\r\n\r\n", false},
		{"1.0 default closes", "GET / HTTP/1.0\r\nHost: x\r\n\r\n", false},
		{"1.0 explicit keep-alive", "GET / HTTP/1.0\r\nHost: x\r\nConnection: keep-alive\r\n\r\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := readRequest(bufio.NewReader(strings.NewReader(tc.raw)))
			if err != nil {
				t.Fatalf("readRequest: %v", err)
			}
			if req.ShouldKeepAlive != tc.want {
				t.Fatalf("got %v, want %v", req.ShouldKeepAlive, tc.want)
			}
		})
	}
}

func TestWriteResponseSerializesStatusHeadersAndBody(t *testing.T) {
	res := Status(200)
	res.Header.Set("X-Test", "yes")
	res.Body = []byte("hi")

	var buf bytes.Buffer
	if err := writeResponse(&buf, res); err != nil {
		t.Fatalf("writeResponse: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("unexpected status line: %q", out)
	}
	if !strings.Contains(out, "X-Test: yes\r\n") {
		t.Fatalf("missing custom header: %q", out)
	}
	if !strings.Contains(out, "Content-Length: 2\r\n") {
		t.Fatalf("missing computed content-length: %q", out)
	}
	if !strings.HasSuffix(out, "\r\n\r\nhi") {
		t.Fatalf("missing body: %q", out)
	}
}

func TestWriteResponseOmitsContentLengthOnUpgrade(t *testing.T) {
	res := Status(101)
	res.Upgrade = func() error { return nil }

	var buf bytes.Buffer
	if err := writeResponse(&buf, res); err != nil {
		t.Fatalf("writeResponse: %v", err)
	}
	if strings.Contains(buf.String(), "Content-Length") {
		t.Fatalf("did not expect Content-Length on an upgrade response: %q", buf.String())
	}
}
