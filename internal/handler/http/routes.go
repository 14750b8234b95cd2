// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// apiPaths are the routes under /api, used to register their OPTIONS
// handlers.
var apiPaths = []string{"/auth/login", "/auth/register", "/auth/me", "/health", "/version"}

// Init builds the router:
//
//	POST /api/auth/login
//	POST /api/auth/register
//	GET  /api/auth/me
//	GET  /api/health
//	GET  /api/version
//
// Every path also answers OPTIONS with 204.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(h.corsOptions()))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.With(h.withSession).Get("/auth/me", h.me)

		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		for _, path := range apiPaths {
			r.Options(path, preflight)
		}
	})

	return router
}

// corsOptions allows any origin without credentials unless an explicit
// origin list is configured.
func (h *Handler) corsOptions() cors.Options {
	opts := cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:     []string{traceIDHeader},
		MaxAge:             3600,
		OptionsPassthrough: true,
	}

	if len(h.cfg.CORSAllowedOrigins) > 0 {
		opts.AllowedOrigins = h.cfg.CORSAllowedOrigins
		opts.AllowCredentials = true
	}

	return opts
}
