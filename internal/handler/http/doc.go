// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the authentication
// service.
//
// It exposes route wiring, request handlers, and middleware for the
// /api/auth and /api/health endpoints. Cross-cutting concerns such as
// request tracing, access logging, CORS preflight, session resolution and
// JSON error bodies are handled in this package before requests are
// delegated to the service layer.
package http
