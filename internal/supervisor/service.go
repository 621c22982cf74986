// Vixen - Embeddable HTTP and WebSocket Server Core
// Copyright 2026 Vixen Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vixen-http/vixen

package supervisor

import "context"

// Runnable is satisfied by any domain object whose lifecycle is "run until
// ctx is canceled, then return." Both the accept loop and the default
// socket pool implement this shape, so Wrap lets them join a Tree without
// depending on suture themselves.
type Runnable interface {
	Run(ctx context.Context) error
}

// Service adapts a Runnable into a suture.Service, giving it the String
// method suture uses to name services in logs and failure reports.
type Service struct {
	runnable Runnable
	name     string
}

// Wrap names r for supervision under name.
func Wrap(name string, r Runnable) *Service {
	return &Service{runnable: r, name: name}
}

// Serve implements suture.Service.
func (s *Service) Serve(ctx context.Context) error {
	return s.runnable.Run(ctx)
}

// String implements fmt.Stringer.
func (s *Service) String() string {
	return s.name
}
