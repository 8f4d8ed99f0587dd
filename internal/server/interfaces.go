// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the API server.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
