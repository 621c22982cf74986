// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package vixen

import (
	"net"
	"strings"

	"github.com/vixen-http/vixen/internal/config"
	"github.com/vixen-http/vixen/internal/logging"
)

// OptionsFromEnv loads vixen's ambient settings (address, timeout, log
// level/format) from a layered koanf pipeline — defaults, then an
// optional YAML file, then VIXEN_*-prefixed environment variables — and
// returns them as Options ready to pass to New. This supplements the
// functional-option Config from spec.md §6 with twelve-factor
// configuration, for embedders that want to configure vixen the same way
// the rest of their process is configured.
func OptionsFromEnv() ([]Option, error) {
	values, err := config.Load()
	if err != nil {
		return nil, err
	}
	return optionsFromValues(values), nil
}

// OptionsFromFile is like OptionsFromEnv but reads its YAML layer from an
// explicit path instead of searching the default config file locations.
func OptionsFromFile(path string) ([]Option, error) {
	values, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return optionsFromValues(values), nil
}

func optionsFromValues(values *config.Values) []Option {
	opts := []Option{WithTimeout(values.ReadTimeout)}

	if values.UnixSocketPath != "" {
		opts = append(opts, WithAddress(Unix(values.UnixSocketPath)))
	} else {
		var ip net.IP
		if values.Host != "0.0.0.0" && values.Host != "::" && values.Host != "" {
			ip = net.ParseIP(values.Host)
		}
		if ip != nil && ip.To4() == nil {
			opts = append(opts, WithAddress(IP6(ip, values.Port)))
		} else {
			opts = append(opts, WithAddress(IP4(ip, values.Port)))
		}
	}

	opts = append(opts, WithLogger(NewLoggerFromValues(values)))
	return opts
}

// NewLoggerFromValues builds a Logger at the configured level/format,
// writing to stderr — the ambient default for processes that load their
// settings via OptionsFromEnv rather than constructing a Logger by hand.
func NewLoggerFromValues(values *config.Values) Logger {
	return zerologLogger{logger: logging.New(logging.Config{
		Level:  values.LogLevel,
		Format: strings.ToLower(values.LogFormat),
	})}
}
