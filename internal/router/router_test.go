// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the route table, the middleware chain and the
// health endpoint.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"staticcms/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	healthHandler(nil)(w, httptest.NewRequest("GET", "/health", nil))

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthHandlerFailingCheck(t *testing.T) {
	checks := map[string]Check{
		"database": func(context.Context) error { return nil },
		"valkey":   func(context.Context) error { return errors.New("connection refused") },
	}
	w := httptest.NewRecorder()
	healthHandler(checks)(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["check"] != "valkey" {
		t.Errorf("failing check: got %q, want valkey", body["check"])
	}
}

func TestRoutes(t *testing.T) {
	r := New(handlers.NewAPI(handlers.Deps{}), Options{})

	want := map[string]bool{
		"GET /health":                 true,
		"GET /api/pages/":             true,
		"POST /api/pages/":            true,
		"GET /api/pages/{id}":         true,
		"PUT /api/pages/{id}":         true,
		"DELETE /api/pages/{id}":      true,
		"GET /api/menus/":             true,
		"POST /api/menus/":            true,
		"GET /api/menus/{id}":         true,
		"PUT /api/menus/{id}":         true,
		"GET /api/settings":           true,
		"PUT /api/settings":           true,
		"POST /api/upload":            true,
		"GET /api/uploads":            true,
		"POST /api/generate":          true,
		"POST /api/build":             true,
		"GET /api/build/status":       true,
		"GET /api/dashboard/stats":    true,
		"GET /api/dashboard/recent":   true,
		"GET /api/dashboard/activity": true,
	}

	got := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	for route := range want {
		if !got[route] {
			t.Errorf("missing route %s", route)
		}
	}
}

func TestUnconfiguredServicesAnswer503(t *testing.T) {
	r := New(handlers.NewAPI(handlers.Deps{}), Options{})

	for _, path := range []string{"/api/generate", "/api/build"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("POST %s: got %d, want 503", path, w.Code)
		}
	}
}

func TestUploadListWithoutRepository(t *testing.T) {
	r := New(handlers.NewAPI(handlers.Deps{}), Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/uploads", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/uploads: got %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestUploadsServedFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "2026", "10"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2026", "10", "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(handlers.NewAPI(handlers.Deps{}), Options{UploadDir: dir})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/2026/10/a.txt", nil))
	if w.Code != http.StatusOK || w.Body.String() != "hello" {
		t.Errorf("got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing file: got %d, want 404", w.Code)
	}
}

func TestCORSPreflightOnAPI(t *testing.T) {
	r := New(handlers.NewAPI(handlers.Deps{}), Options{CORSOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/pages/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight: got %d, want 204", w.Code)
	}
}
