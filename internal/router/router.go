// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware for the staticcms
// API server.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"staticcms/internal/handlers"
	"staticcms/internal/middleware"
	"staticcms/internal/storage"
)

// Check probes one dependency for the health endpoint.
type Check func(ctx context.Context) error

// Options configures the parts of the route table that depend on the
// deployment.
type Options struct {
	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string
	// UploadDir, when set, is served under /uploads/ (disk storage backend).
	UploadDir string
	// Checks are run by /health, keyed by dependency name.
	Checks map[string]Check
}

// New creates the chi router with all middleware and routes wired up.
func New(api *handlers.API, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.Get("/health", healthHandler(opts.Checks))

	r.Route("/api", func(r chi.Router) {
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", api.ListPages)
			r.Post("/", api.CreatePage)
			r.Get("/{id}", api.GetPage)
			r.Put("/{id}", api.UpdatePage)
			r.Delete("/{id}", api.DeletePage)
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", api.ListMenus)
			r.Post("/", api.CreateMenu)
			r.Get("/{id}", api.GetMenu)
			r.Put("/{id}", api.UpdateMenu)
		})

		r.Get("/settings", api.GetSettings)
		r.Put("/settings", api.UpdateSettings)

		r.Post("/upload", api.Upload)
		r.Get("/uploads", api.ListUploads)

		// Site generation. /build is the name used by newer editors.
		r.Post("/generate", api.Generate)
		r.Post("/build", api.Generate)
		r.Get("/build/status", api.BuildStatus)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", api.Stats)
			r.Get("/recent", api.RecentPages)
			r.Get("/activity", api.Activity)
		})
	})

	if opts.UploadDir != "" {
		fs := http.StripPrefix(storage.URLPrefix, http.FileServer(http.Dir(opts.UploadDir)))
		r.Handle(storage.URLPrefix+"*", fs)
	}

	return r
}

// healthHandler reports {"status":"ok"} when every check passes and 503
// with the failing check names otherwise.
func healthHandler(checks map[string]Check) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				slog.Warn("health check failed", "check", name, "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"unavailable","check":"` + name + `"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}
