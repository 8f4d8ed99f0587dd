// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the catalog server.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression, session authentication and the
// admin-only guard run here before requests reach the service layer.
// Service and store errors are turned into status codes by statusFromError.
package http
