// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"fmt"
	"net"
	"os"
)

// Family identifies the address family an Address binds to.
type Family int

const (
	// FamilyUnknown is the zero value; Address.listen fails on it.
	FamilyUnknown Family = iota
	FamilyIP4
	FamilyIP6
	FamilyUnix
)

// Address is the opaque endpoint descriptor spec.md §3 calls Endpoint: a
// value type naming where the server should bind, independent of whether
// it has done so yet.
type Address struct {
	family Family
	ip     net.IP
	port   int
	path   string
	// wildcard is true for an IP address meant to bind "any interface"
	// (0.0.0.0 / ::), which the logger formats differently from a
	// specific address (spec.md §6, scenario S5).
	wildcard bool
}

// IP4 returns an IPv4 Address bound to ip (nil means wildcard, 0.0.0.0).
func IP4(ip net.IP, port int) Address {
	return Address{family: FamilyIP4, ip: ip, port: port, wildcard: ip == nil || ip.IsUnspecified()}
}

// IP6 returns an IPv6 Address bound to ip (nil means wildcard, ::).
func IP6(ip net.IP, port int) Address {
	return Address{family: FamilyIP6, ip: ip, port: port, wildcard: ip == nil || ip.IsUnspecified()}
}

// Unix returns an Address bound to a filesystem socket path. Callers are
// responsible for removing a stale path before Start; vixen does not
// unlink on their behalf (spec.md §6).
func Unix(path string) Address {
	return Address{family: FamilyUnix, path: path}
}

// PortAddress is the "port" convenience option from spec.md §6: it binds
// to the wildcard IPv6 address on hosts that can open an IPv6 listener,
// falling back to wildcard IPv4. The IPv6 listener uses the "tcp6"
// network, so it does not accept IPv4 clients.
func PortAddress(port int) Address {
	if ip6Capable() {
		return IP6(nil, port)
	}
	return IP4(nil, port)
}

func ip6Capable() bool {
	ln, err := net.Listen("tcp6", "[::]:0")
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

// network returns the net.Listen network name for this Address's family.
func (a Address) network() string {
	switch a.family {
	case FamilyIP4:
		return "tcp4"
	case FamilyIP6:
		return "tcp6"
	case FamilyUnix:
		return "unix"
	default:
		return ""
	}
}

// bindTarget returns the net.Listen address argument for this Address.
func (a Address) bindTarget() string {
	switch a.family {
	case FamilyIP4, FamilyIP6:
		if a.wildcard {
			return fmt.Sprintf(":%d", a.port)
		}
		return net.JoinHostPort(a.ip.String(), fmt.Sprintf("%d", a.port))
	case FamilyUnix:
		return a.path
	default:
		return ""
	}
}

// startupLogLine formats the "starting server ..." log line per spec.md
// §6 / scenario S5.
func (a Address) startupLogLine() string {
	switch a.family {
	case FamilyIP4, FamilyIP6:
		if a.wildcard {
			return fmt.Sprintf("starting server port: %d", a.port)
		}
		return fmt.Sprintf("starting server %s:%d", a.ip.String(), a.port)
	case FamilyUnix:
		return fmt.Sprintf("starting server path: %s", a.path)
	default:
		return "starting server"
	}
}

// listen creates the listening socket for this Address: sets the
// address-reuse option so a fast restart on the same port succeeds, and
// (where the host delivers it) ignores SIGPIPE on writes to a socket the
// peer has already closed. Neither condition is logged here; logging the
// failure is the Server's responsibility once it decides the error is
// fatal (spec.md §4.2).
func (a Address) listen() (net.Listener, error) {
	network := a.network()
	if network == "" {
		return nil, fmt.Errorf("vixen: address has unknown family")
	}

	suppressSIGPIPE()
	if network == "unix" {
		return net.Listen(network, a.bindTarget())
	}

	lc := net.ListenConfig{Control: setReuseAddr}
	return lc.Listen(contextForListen(), network, a.bindTarget())
}

// RemoveStaleUnixSocket unlinks a previous unix socket file at path, if
// present, so a restarted server can rebind. Not called automatically —
// spec.md §6 makes this the caller's responsibility — but exposed as a
// convenience most embedders end up writing anyway.
func RemoveStaleUnixSocket(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
