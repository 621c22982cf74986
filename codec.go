// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"
)

// Header is a case-insensitive, insertion-order-preserving multi-value
// header map, matching spec.md §3's description of HTTPRequest/HTTPResponse
// headers. It is built on net/textproto.MIMEHeader's canonicalization
// (the same primitive net/http itself uses internally), which is the
// stdlib justification recorded in DESIGN.md for this file: there is no
// third-party wire parser in the example corpus that does raw HTTP/1.x
// octet parsing without also bringing in a full server or client stack.
type Header = textproto.MIMEHeader

// Request is the Go form of spec.md §3's HTTPRequest.
type Request struct {
	Method          string
	Path            string
	Query           string
	Proto           string
	Header          Header
	Body            []byte
	ShouldKeepAlive bool
}

// Response is the Go form of spec.md §3's HTTPResponse.
type Response struct {
	Status  int
	Header  Header
	Body    []byte
	Upgrade UpgradeFunc
}

// UpgradeFunc takes over the raw connection after a 101 response has been
// written, running an indefinite protocol loop (e.g. the WebSocket frame
// loop) until it returns. Spec.md §3 calls this the "upgrade payload".
type UpgradeFunc func() error

// Status builds a Response carrying only a status code, the common case
// for simple routes.
func Status(code int) *Response {
	return &Response{Status: code, Header: make(Header)}
}

// Handler is spec.md §4.7's handler contract: a function from a request
// to a response that may fail or suspend. It may not retain the
// connection's socket except by returning a non-nil Response.Upgrade.
type Handler func(ctx context.Context, req *Request) (*Response, error)

var statusText = map[int]string{
	101: "Switching Protocols",
	200: "OK",
	202: "Accepted",
	204: "No Content",
	400: "Bad Request",
	404: "Not Found",
	410: "Gone",
	500: "Internal Server Error",
}

func reasonPhrase(status int) string {
	if text, ok := statusText[status]; ok {
		return text
	}
	return "Status"
}

// readRequest parses exactly one HTTP/1.0 or HTTP/1.1 request from r, per
// RFC 7230. It does not consume more than one request's worth of bytes,
// so pipelined bytes remain for the next call.
func readRequest(r *bufio.Reader) (*Request, error) {
	tp := textproto.NewReader(r)

	line, err := tp.ReadLine()
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("vixen: malformed request line %q", line)
	}
	method, target, proto := parts[0], parts[1], parts[2]
	if proto != "HTTP/1.0" && proto != "HTTP/1.1" {
		return nil, fmt.Errorf("vixen: unsupported protocol %q", proto)
	}

	path, query, _ := strings.Cut(target, "?")

	header, err := tp.ReadMIMEHeader()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("vixen: malformed headers: %w", err)
	}

	var body []byte
	if cl := header.Get("Content-Length"); cl != "" {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("vixen: malformed content-length %q", cl)
		}
		body = make([]byte, n)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("vixen: short body: %w", err)
		}
	}

	connHeader := header.Get("Connection")
	var keepAlive bool
	switch proto {
	case "HTTP/1.1":
		keepAlive = !strings.EqualFold(connHeader, "close")
	case "HTTP/1.0":
		keepAlive = strings.EqualFold(connHeader, "keep-alive")
	}

	return &Request{
		Method:          method,
		Path:            path,
		Query:           query,
		Proto:           proto,
		Header:          header,
		Body:            body,
		ShouldKeepAlive: keepAlive,
	}, nil
}

// writeResponse serializes res as an HTTP/1.1 response onto w.
func writeResponse(w io.Writer, res *Response) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", res.Status, reasonPhrase(res.Status))
	if res.Header.Get("Content-Length") == "" && res.Upgrade == nil {
		fmt.Fprintf(bw, "Content-Length: %d\r\n", len(res.Body))
	}
	for key, values := range res.Header {
		for _, value := range values {
			fmt.Fprintf(bw, "%s: %s\r\n", key, value)
		}
	}
	bw.WriteString("\r\n")
	if len(res.Body) > 0 {
		bw.Write(res.Body)
	}
	return bw.Flush()
}
