// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import "strings"

// Route is one entry in a Router: a method pattern, a path pattern, and
// the handler to invoke when both match. Routes are immutable once
// appended (spec.md §3); only the Router's ordered slice changes.
type Route struct {
	method  string
	segs    []string
	handler Handler
}

// Router holds an ordered list of Routes. Dispatch selects the first
// entry whose method and path both match (spec.md §4.3) — this makes a
// catch-all route appended last behave as a fallback, and makes
// precedence explicit to the caller rather than implicit in pattern
// specificity.
type Router struct {
	routes []Route
}

// parsePattern splits a "METHOD path" or bare "path" pattern string into
// a method (empty means "any", matched case-insensitively) and path
// segments.
func parsePattern(pattern string) (method string, segs []string) {
	fields := strings.SplitN(strings.TrimSpace(pattern), " ", 2)
	if len(fields) == 2 {
		return strings.ToUpper(fields[0]), splitPath(fields[1])
	}
	return "", splitPath(fields[0])
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return []string{}
	}
	return strings.Split(path, "/")
}

// appendRoute appends pattern/handler to the router. Safe to call before
// Start and, per spec.md §4.1, while the server is running — the change
// is visible to the next dispatch to read the router (Go's slice append
// under the supervisor's single-writer discipline, see server.go).
func (r *Router) appendRoute(pattern string, handler Handler) {
	method, segs := parsePattern(pattern)
	r.routes = append(r.routes, Route{method: method, segs: segs, handler: handler})
}

// match finds the first route whose method and path both match, per
// spec.md §4.3's first-match-wins rule. Method comparison is
// case-insensitive; path segment comparison is case-sensitive.
func (r *Router) match(method, path string) (Handler, bool) {
	pathSegs := splitPath(path)
	method = strings.ToUpper(method)

	for _, route := range r.routes {
		if route.method != "" && route.method != method {
			continue
		}
		if segsMatch(route.segs, pathSegs) {
			return route.handler, true
		}
	}
	return nil, false
}

// segsMatch compares a route pattern's segments against a request path's
// segments. "*" matches exactly one segment; "**", or a trailing "*", or a
// segment literally equal to "*" at the final position, matches the
// remainder of the path (zero or more segments).
func segsMatch(pattern, path []string) bool {
	for i, p := range pattern {
		if p == "**" {
			return true
		}
		if p == "*" && i == len(pattern)-1 {
			return true
		}
		if i >= len(path) {
			return false
		}
		if p == "*" {
			continue
		}
		if p != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}
